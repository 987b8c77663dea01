package generators

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/configs"
	"github.com/sneldao/snel-sub004/modes"
)

func testScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(paths, "")),
	)
}

func TestGetGenerator(t *testing.T) {
	testScope(t, "testdata/generators.cue").Call(func(
		get GetGenerator,
	) {
		generator, err := get("local")
		if err != nil {
			t.Fatal(err)
		}
		if args := generator.Args(); args.BaseURL != "http://127.0.0.1:11434/v1" || args.Model != "qwen2.5-coder" {
			t.Fatalf("got %+v", args)
		}

		generator, err = get("custom")
		if err != nil {
			t.Fatal(err)
		}
		if args := generator.Args(); args.BaseURL != "http://127.0.0.1:9" {
			t.Fatalf("got %+v", args)
		}

		generator, err = get("ollama:llama3")
		if err != nil {
			t.Fatal(err)
		}
		if generator.Args().Model != "llama3" {
			t.Fatalf("got %+v", generator.Args())
		}

		generator, err = get("openrouter:qwen/qwen3-coder")
		if err != nil {
			t.Fatal(err)
		}
		if !generator.Args().IsOpenRouter {
			t.Fatalf("got %+v", generator.Args())
		}

		generator, err = get("gpt-4o-mini")
		if err != nil {
			t.Fatal(err)
		}
		if generator.Args().BaseURL != openAIBaseURL {
			t.Fatalf("got %+v", generator.Args())
		}

		if _, err := get("broken"); err == nil {
			t.Fatal("should fail")
		}
		if _, err := get("nope"); err == nil {
			t.Fatal("should fail")
		}
	})
}

func TestDefaultGenerator(t *testing.T) {
	testScope(t).Call(func(
		name DefaultModelName,
		get GetDefaultGenerator,
	) {
		if name != "gpt-4o-mini" {
			t.Fatalf("got %q", name)
		}
		generator, err := get()
		if err != nil {
			t.Fatal(err)
		}
		if generator.Args().Model != "gpt-4o-mini" {
			t.Fatalf("got %+v", generator.Args())
		}
	})
}

func TestCountTokens(t *testing.T) {
	testScope(t).Call(func(
		count BPETokenCounter,
	) {
		n, err := count("PUSH 0.001\nCONVERT_ETH_TO_WEI")
		if err != nil {
			t.Fatal(err)
		}
		if n <= 0 {
			t.Fatalf("got %v", n)
		}
	})
}

func TestGeneratorSpecPrecedence(t *testing.T) {
	testScope(t, "testdata/override.cue", "testdata/generators.cue").Call(func(
		get GetGenerator,
		getSpecs GetGeneratorSpecs,
	) {
		generator, err := get("local")
		if err != nil {
			t.Fatal(err)
		}
		if args := generator.Args(); args.Model != "nearest" || args.ContextTokens != 1000 {
			t.Fatalf("got %+v", args)
		}

		generator, err = get("custom")
		if err != nil {
			t.Fatal(err)
		}
		if n := generator.Args().ContextTokens; n != defaultSpecContextTokens {
			t.Fatalf("got %v", n)
		}

		specs, err := getSpecs()
		if err != nil {
			t.Fatal(err)
		}
		if len(specs) != 3 {
			t.Fatalf("got %+v", specs)
		}
	})
}

func TestGeneratorSpecWithoutName(t *testing.T) {
	testScope(t, "testdata/nameless.cue").Call(func(
		get GetGenerator,
	) {
		if _, err := get("x"); err == nil {
			t.Fatal("expected error")
		}
	})
}
