package values

type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindFloat
	KindString
	KindBoolean
	KindAddress
	KindUser
	KindTokenAmount
)

var kindTitles = [...]string{
	KindInvalid:     "Invalid",
	KindInteger:     "Integer",
	KindFloat:       "Float",
	KindString:      "String",
	KindBoolean:     "Boolean",
	KindAddress:     "Address",
	KindUser:        "User",
	KindTokenAmount: "TokenAmount",
}

// String returns the title used in type checks and diagnostics.
func (k Kind) String() string {
	if int(k) < len(kindTitles) {
		return kindTitles[k]
	}
	return kindTitles[KindInvalid]
}

var AllKinds = []Kind{
	KindInteger,
	KindFloat,
	KindString,
	KindBoolean,
	KindAddress,
	KindUser,
	KindTokenAmount,
}
