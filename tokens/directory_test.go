package tokens

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/modes"
	"github.com/sneldao/snel-sub004/values"
)

func TestDirectory(t *testing.T) {
	dir, err := NewDirectory(Builtin, map[string]string{
		"foo": "0x0000000000000000000000000000000000000001",
	})
	if err != nil {
		t.Fatal(err)
	}
	addr, ok := dir.Lookup("aero")
	if !ok {
		t.Fatal()
	}
	if addr.String() != "0x940181a94A35A4569E4529A3CDfB74e38FD98631" {
		t.Fatalf("got %v", addr)
	}
	addr, ok = dir.Lookup("FOO")
	if !ok {
		t.Fatal()
	}
	if addr.String() != "0x0000000000000000000000000000000000000001" {
		t.Fatalf("got %v", addr)
	}
	eth, _ := dir.Lookup("eth")
	if eth != values.NativeToken {
		t.Fatalf("got %v", eth)
	}
	if _, ok := dir.Lookup("nope"); ok {
		t.Fatal()
	}
}

func TestBadAddress(t *testing.T) {
	_, err := NewDirectory(map[string]string{
		"BAD": "0x1",
	})
	if err == nil {
		t.Fatal("should error")
	}
}

func TestModule(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		dir Directory,
	) {
		if _, ok := dir.Lookup("USDC"); !ok {
			t.Fatal()
		}
	})
}
