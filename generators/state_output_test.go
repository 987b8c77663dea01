package generators

import (
	"bytes"
	"testing"
)

func TestOutput(t *testing.T) {
	t.Run("basic text", func(t *testing.T) {
		buf := new(bytes.Buffer)
		state := State(NewOutput(NewPrompts("system prompt", nil), buf, true))
		state, err := state.AppendContent(&Content{
			Role:  RoleUser,
			Parts: []Part{Text("hello")},
		})
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != "hello" {
			t.Fatalf("got %q", buf.String())
		}
		if len(state.Contents()) != 1 {
			t.Fatalf("got %+v", state.Contents())
		}
	})

	t.Run("thoughts and roles", func(t *testing.T) {
		buf := new(bytes.Buffer)
		state := State(NewOutput(NewPrompts("", nil), buf, true))
		var err error
		for _, content := range []*Content{
			{Role: RoleUser, Parts: []Part{Text("q")}},
			{Role: RoleAssistant, Parts: []Part{Thought("t1")}},
			{Role: RoleAssistant, Parts: []Part{Thought("t2"), Text("a")}},
		} {
			state, err = state.AppendContent(content)
			if err != nil {
				t.Fatal(err)
			}
		}
		if state, err = state.Flush(); err != nil {
			t.Fatal(err)
		}
		want := "q\n\n<think>\nt1t2\n</think>\na\n\n"
		if buf.String() != want {
			t.Fatalf("got %q", buf.String())
		}
	})

	t.Run("hidden thoughts and logs", func(t *testing.T) {
		buf := new(bytes.Buffer)
		state := State(NewOutput(NewPrompts("", nil), buf, false))
		var err error
		state, err = state.AppendContent(&Content{
			Role:  RoleAssistant,
			Parts: []Part{Thought("secret"), Text("shown")},
		})
		if err != nil {
			t.Fatal(err)
		}
		state, err = state.AppendContent(&Content{
			Role:  RoleLog,
			Parts: []Part{FinishReason("stop")},
		})
		if err != nil {
			t.Fatal(err)
		}
		if buf.String() != "shown" {
			t.Fatalf("got %q", buf.String())
		}
		if len(state.Contents()) != 2 {
			t.Fatalf("got %+v", state.Contents())
		}
		if _, ok := As[Prompts](state); !ok {
			t.Fatal("no Prompts under Output")
		}
	})
}
