package generators

import "github.com/sneldao/snel-sub004/vars"

// OpenAIParser groups streamed deltas into contents. Long runs are emitted in pieces so
// decorators like Output can print while the stream is still open.
type OpenAIParser struct {
	current *Content
}

const parserChunkSize = 64

func (o *OpenAIParser) Input(delta ChatCompletionStreamChoiceDelta) (ret []*Content) {
	if delta.Content == "" && delta.ReasoningContent == "" && delta.Role == "" {
		return nil
	}

	role := Role(delta.Role)
	switch {
	case o.current == nil:
		o.current = &Content{
			Role: vars.FirstNonZero(role, RoleAssistant),
		}
	case role != "" && role != o.current.Role:
		ret = append(ret, o.current)
		o.current = &Content{
			Role: role,
		}
	}

	if delta.ReasoningContent != "" {
		o.appendPart(Thought(delta.ReasoningContent))
	}
	if delta.Content != "" {
		o.appendPart(Text(delta.Content))
	}

	if len(o.current.Parts) == 0 {
		return
	}
	switch last := o.current.Parts[len(o.current.Parts)-1].(type) {
	case Text:
		if len(last) > parserChunkSize {
			ret = append(ret, o.current)
			o.current = &Content{
				Role: o.current.Role,
			}
		}
	case Thought:
		if len(last) > parserChunkSize {
			ret = append(ret, o.current)
			o.current = &Content{
				Role: o.current.Role,
			}
		}
	}

	return
}

func (o *OpenAIParser) appendPart(part Part) {
	if n := len(o.current.Parts); n > 0 {
		switch prev := o.current.Parts[n-1].(type) {
		case Text:
			if text, ok := part.(Text); ok {
				o.current.Parts[n-1] = prev + text
				return
			}
		case Thought:
			if thought, ok := part.(Thought); ok {
				o.current.Parts[n-1] = prev + thought
				return
			}
		}
	}
	o.current.Parts = append(o.current.Parts, part)
}

func (o *OpenAIParser) End() (ret []*Content) {
	if o.current != nil && len(o.current.Parts) > 0 {
		ret = append(ret, o.current)
	}
	o.current = nil
	return
}
