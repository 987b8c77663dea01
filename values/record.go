package values

// Record is the flat form of a value used in snapshots.
type Record struct {
	Title string `msgpack:"title"`
	Text  string `msgpack:"text"`
}

func ToRecord(v Value) Record {
	return Record{
		Title: v.Kind().String(),
		Text:  v.String(),
	}
}

func ToRecords(vs []Value) []Record {
	ret := make([]Record, 0, len(vs))
	for _, v := range vs {
		ret = append(ret, ToRecord(v))
	}
	return ret
}
