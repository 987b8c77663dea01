package generators

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/reusee/dscope"
	"github.com/sneldao/snel-sub004/debugs"
	"github.com/sneldao/snel-sub004/logs"
	"github.com/sneldao/snel-sub004/nets"
	"github.com/sneldao/snel-sub004/vars"
)

// OpenAI talks to any endpoint implementing the streaming chat completions API.
type OpenAI struct {
	args   GeneratorArgs
	apiKey string
	client nets.HTTPClient

	Count  dscope.Inject[BPETokenCounter]
	Logger dscope.Inject[logs.Logger]
	Tap    dscope.Inject[debugs.Tap]
}

var _ Generator = new(OpenAI)

func (o *OpenAI) Args() GeneratorArgs {
	return o.args
}

func (o *OpenAI) CountTokens(text string) (int, error) {
	return o.Count()(text)
}

func (o *OpenAI) Generate(ctx context.Context, state State) (ret State, err error) {
	ret = state

	req := ChatCompletionRequest{
		Model:               o.args.Model,
		Stream:              true,
		MaxCompletionTokens: vars.DerefOrZero(o.args.MaxGenerateTokens),
		Temperature: vars.FirstNonZero(
			*temperatureFlag,
			vars.DerefOrZero(o.args.Temperature),
		),
		StreamOptions: &StreamOptions{
			IncludeUsage: true,
		},
	}
	req.Messages, err = stateToOpenAIMessages(state)
	if err != nil {
		return nil, err
	}

	if *debugOpenAI {
		o.Logger().InfoContext(ctx, "open ai messages to send",
			"messages", req.Messages,
		)
	}
	if *tapOpenAI {
		o.Tap()(ctx, "before chat completion", map[string]any{
			"messages": req.Messages,
			"args":     o.args,
		})
	}

	o.Logger().InfoContext(ctx, "generating",
		"model", o.args.Model,
		"messages", len(req.Messages),
	)

	bodyBytes, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimSuffix(o.args.BaseURL, "/")+"/chat/completions",
		bytes.NewReader(bodyBytes),
	)
	if err != nil {
		return nil, err
	}
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return ret, OpenAIError{
			Err:     err,
			Request: req,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ret, statusError(resp, req)
	}

	parser := new(OpenAIParser)
	appendContents := func(contents []*Content) error {
		for _, content := range contents {
			if *debugOpenAI {
				o.Logger().InfoContext(ctx, "open ai content",
					"details", content,
				)
			}
			if ret, err = ret.AppendContent(content); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*K), 4*M)
	for scanner.Scan() {
		line := scanner.Text()
		data, ok := strings.CutPrefix(line, "data: ")
		if !ok {
			continue
		}
		if data == "[DONE]" {
			break
		}

		var streamResp ChatCompletionStreamResponse
		if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
			return ret, fmt.Errorf("error unmarshalling stream response: %w", err)
		}

		if usage := streamResp.Usage; usage != nil {
			part := Usage{
				PromptTokens:     usage.PromptTokens,
				CompletionTokens: usage.CompletionTokens,
			}
			if usage.CompletionTokensDetails != nil {
				part.ReasoningTokens = usage.CompletionTokensDetails.ReasoningTokens
			}
			if err := appendContents([]*Content{{
				Role:  RoleLog,
				Parts: []Part{part},
			}}); err != nil {
				return ret, err
			}
		}

		if len(streamResp.Choices) == 0 {
			continue
		}
		choice := streamResp.Choices[0]

		if err := appendContents(parser.Input(choice.Delta)); err != nil {
			return ret, err
		}

		if reason := choice.FinishReason; reason != "" {
			if err := appendContents(parser.End()); err != nil {
				return ret, err
			}
			if err := appendContents([]*Content{{
				Role:  RoleLog,
				Parts: []Part{FinishReason(reason)},
			}}); err != nil {
				return ret, err
			}
			if reason == "error" {
				return ret, errors.Join(errors.New(reason), ErrRetryable)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return ret, fmt.Errorf("error reading stream: %w", err)
	}

	if err := appendContents(parser.End()); err != nil {
		return ret, err
	}
	return ret.Flush()
}

func statusError(resp *http.Response, req ChatCompletionRequest) error {
	body, _ := io.ReadAll(resp.Body)
	var err error
	var errResp ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != nil {
		errResp.Error.HTTPStatusCode = resp.StatusCode
		err = errResp.Error
	} else {
		err = fmt.Errorf("bad status: %d, body: %s", resp.StatusCode, body)
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return errors.Join(err, ErrRetryable)
	}
	return OpenAIError{
		Err:     err,
		Request: req,
	}
}

func stateToOpenAIMessages(state State) (messages []ChatCompletionMessage, err error) {
	if prompt := state.SystemPrompt(); prompt != "" {
		messages = append(messages, ChatCompletionMessage{
			Role:    string(RoleSystem),
			Content: prompt,
		})
	}

	for _, content := range state.Contents() {
		if content.Role == RoleLog {
			continue
		}
		text := content.Text()
		if text == "" {
			continue
		}
		role := string(content.Role)
		if n := len(messages); n > 0 && messages[n-1].Role == role {
			// consecutive contents separated by log entries
			messages[n-1].Content += text
			continue
		}
		messages = append(messages, ChatCompletionMessage{
			Role:    role,
			Content: text,
		})
	}

	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages to send")
	}
	return
}

type NewOpenAI func(args GeneratorArgs, apiKey string) *OpenAI

func (Module) NewOpenAI(
	inject dscope.InjectStruct,
	client nets.HTTPClient,
) NewOpenAI {
	return func(args GeneratorArgs, apiKey string) *OpenAI {
		ret := &OpenAI{
			args:   args,
			client: client,
			apiKey: apiKey,
		}
		inject(&ret)
		return ret
	}
}

type ChatCompletionRequest struct {
	Model               string                  `json:"model"`
	Messages            []ChatCompletionMessage `json:"messages"`
	Stream              bool                    `json:"stream"`
	StreamOptions       *StreamOptions          `json:"stream_options,omitempty"`
	MaxCompletionTokens int                     `json:"max_completion_tokens,omitempty"`
	Temperature         float32                 `json:"temperature,omitempty"`
}

type StreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionStreamResponse struct {
	Choices []ChatCompletionStreamChoice `json:"choices"`
	Usage   *CompletionUsage             `json:"usage,omitempty"`
}

type ChatCompletionStreamChoice struct {
	Delta        ChatCompletionStreamChoiceDelta `json:"delta"`
	FinishReason string                          `json:"finish_reason"`
}

type ChatCompletionStreamChoiceDelta struct {
	Content          string `json:"content,omitempty"`
	Role             string `json:"role,omitempty"`
	ReasoningContent string `json:"reasoning_content,omitempty"`
}

type CompletionUsage struct {
	PromptTokens            int                      `json:"prompt_tokens"`
	CompletionTokens        int                      `json:"completion_tokens"`
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

type CompletionTokensDetails struct {
	ReasoningTokens int `json:"reasoning_tokens,omitempty"`
}
