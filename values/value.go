package values

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common"
)

// Value is a tagged operand. The set of implementations is closed.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type Integer int64

func (Integer) Kind() Kind { return KindInteger }
func (Integer) isValue()   {}

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

type Float float64

func (Float) Kind() Kind { return KindFloat }
func (Float) isValue()   {}

func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

type String string

func (String) Kind() Kind { return KindString }
func (String) isValue()   {}

func (s String) String() string {
	return strconv.Quote(string(s))
}

type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) isValue()   {}

func (b Boolean) String() string {
	return strconv.FormatBool(bool(b))
}

type Address common.Address

func (Address) Kind() Kind { return KindAddress }
func (Address) isValue()   {}

func (a Address) String() string {
	return common.Address(a).Hex()
}

func (a Address) Common() common.Address {
	return common.Address(a)
}

// User is a chat handle, kept apart from Address until something resolves it.
type User string

func (User) Kind() Kind { return KindUser }
func (User) isValue()   {}

func (u User) String() string {
	return "@" + string(u)
}

type TokenAmount struct {
	Amount Float
	Token  Address
}

func (TokenAmount) Kind() Kind { return KindTokenAmount }
func (TokenAmount) isValue()   {}

func (t TokenAmount) String() string {
	return t.Amount.String() + " " + t.Token.String()
}

// Describe renders a value with its title, as in Integer(5).
func Describe(v Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String() + "(" + v.String() + ")"
}
