package debugs

import (
	"errors"
	"testing"

	"github.com/sneldao/snel-sub004/values"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type record struct {
		Exported   string
		unexported int
	}
	ptr := &record{
		Exported: "hello",
	}
	exported := func(s string) starlark.Value {
		d := starlark.NewDict(1)
		d.SetKey(starlark.String("Exported"), starlark.String(s))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("abc"), starlark.Bytes("abc")},
		{"string", "hello", starlark.String("hello")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(42), starlark.MakeInt64(42)},
		{"uint8", uint8(42), starlark.MakeUint(42)},
		{"float64", 3.5, starlark.Float(3.5)},
		{"error", errors.New("boom"), starlark.String("boom")},
		{"integer value", values.Integer(5), starlark.String("Integer(5)")},
		{"user value", values.User("bob"), starlark.String("User(@bob)")},
		{"value list", []values.Value{values.Boolean(true)}, starlark.NewList([]starlark.Value{starlark.String("Boolean(true)")})},
		{"[]any", []any{1, "a"}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.String("a")})},
		{"map", map[string]int{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", record{Exported: "hello", unexported: 1}, exported("hello")},
		{"pointer", ptr, exported("hello")},
		{"pointer to pointer", &ptr, exported("hello")},
		{"nil pointer", (*record)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", actual, tc.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
