package generators

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func sseServer(t *testing.T, status int, chunks ...string) (*httptest.Server, *ChatCompletionRequest) {
	got := new(ChatCompletionRequest)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("got path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer key" {
			t.Errorf("got auth %q", r.Header.Get("Authorization"))
		}
		if err := json.NewDecoder(r.Body).Decode(got); err != nil {
			t.Error(err)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			fmt.Fprint(w, chunks[0])
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, chunk := range chunks {
			fmt.Fprintf(w, "data: %s\n\n", chunk)
		}
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	t.Cleanup(server.Close)
	return server, got
}

func TestOpenAIGenerate(t *testing.T) {
	server, req := sseServer(t, http.StatusOK,
		`{"choices":[{"delta":{"role":"assistant","reasoning_content":"thinking"}}]}`,
		`{"choices":[{"delta":{"content":"`+"```\\n"+`PUSH 1"}}]}`,
		`{"choices":[{"delta":{"content":"\nPOP\n`+"```"+`"},"finish_reason":"stop"}]}`,
		`{"choices":[],"usage":{"prompt_tokens":10,"completion_tokens":5}}`,
	)

	testScope(t).Call(func(
		newOpenAI NewOpenAI,
	) {
		generator := newOpenAI(GeneratorArgs{
			BaseURL: server.URL,
			Model:   "test-model",
		}, "key")

		state := State(NewPrompts("grammar", []*Content{
			{
				Role:  RoleUser,
				Parts: []Part{Text("swap")},
			},
		}))
		state, err := generator.Generate(t.Context(), state)
		if err != nil {
			t.Fatal(err)
		}

		if req.Model != "test-model" || !req.Stream {
			t.Fatalf("got %+v", req)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Content != "swap" {
			t.Fatalf("got %+v", req.Messages)
		}

		if got := LastText(state, RoleAssistant); got != "```\nPUSH 1\nPOP\n```" {
			t.Fatalf("got %q", got)
		}

		var sawUsage, sawFinish, sawThought bool
		for _, content := range state.Contents() {
			for _, part := range content.Parts {
				switch part := part.(type) {
				case Usage:
					sawUsage = part.PromptTokens == 10
				case FinishReason:
					sawFinish = part == "stop"
				case Thought:
					sawThought = part == "thinking"
				}
			}
		}
		if !sawUsage || !sawFinish || !sawThought {
			t.Fatalf("got %v %v %v", sawUsage, sawFinish, sawThought)
		}
	})
}

func TestOpenAIErrorStatus(t *testing.T) {
	testScope(t).Call(func(
		newOpenAI NewOpenAI,
	) {
		server, _ := sseServer(t, http.StatusBadRequest, `{"error":{"message":"bad model"}}`)
		_, err := newOpenAI(GeneratorArgs{BaseURL: server.URL}, "key").
			Generate(t.Context(), NewPrompts("s", nil))
		var openAIErr OpenAIError
		if !errors.As(err, &openAIErr) {
			t.Fatalf("got %v", err)
		}
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.HTTPStatusCode != http.StatusBadRequest {
			t.Fatalf("got %v", err)
		}
		if errors.Is(err, ErrRetryable) {
			t.Fatal("should not retry")
		}

		server, _ = sseServer(t, http.StatusTooManyRequests, `slow down`)
		_, err = newOpenAI(GeneratorArgs{BaseURL: server.URL}, "key").
			Generate(t.Context(), NewPrompts("s", nil))
		if !errors.Is(err, ErrRetryable) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "slow down") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestStateToOpenAIMessages(t *testing.T) {
	state := NewPrompts("", []*Content{
		{Role: RoleLog, Parts: []Part{Usage{}}},
		{Role: RoleAssistant, Parts: []Part{Text("foo")}},
		{Role: RoleLog, Parts: []Part{Usage{}}},
		{Role: RoleAssistant, Parts: []Part{Thought("hmm"), Text("bar")}},
		{Role: RoleUser, Parts: []Part{Text("baz")}},
	})
	messages, err := stateToOpenAIMessages(state)
	if err != nil {
		t.Fatal(err)
	}
	if len(messages) != 2 {
		t.Fatalf("got %+v", messages)
	}
	if messages[0].Content != "foobar" || messages[1].Role != "user" {
		t.Fatalf("got %+v", messages)
	}

	if _, err := stateToOpenAIMessages(NewPrompts("", nil)); err == nil {
		t.Fatal("should fail")
	}
}
