package generators

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Output prints contents to w as they are appended. Thoughts go inside <think> tags that
// stay balanced across chunked appends; role changes are separated by a blank line.
type Output struct {
	upstream            State
	w                   io.Writer
	isTerminal          bool
	showThoughts        bool
	showLogs            bool
	lastOutputRole      Role
	lastOutputIsThought bool
}

func NewOutput(upstream State, w io.Writer, showThoughts bool) Output {
	isTerminal := false
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerminal = true
	}
	return Output{
		upstream:     upstream,
		w:            w,
		isTerminal:   isTerminal,
		showThoughts: showThoughts,
	}
}

func (s Output) WithLogs(yes bool) Output {
	s.showLogs = yes
	return s
}

var _ State = Output{}

func (s Output) AppendContent(content *Content) (_ State, err error) {
	ret := s

	if content.Role == RoleLog && !s.showLogs {
		ret.upstream, err = s.upstream.AppendContent(content)
		if err != nil {
			return nil, err
		}
		return ret, nil
	}

	var roleColor string
	if s.isTerminal {
		switch content.Role {
		case RoleUser:
			roleColor = ColorUser
		case RoleSystem:
			roleColor = ColorSystem
		case RoleLog:
			roleColor = ColorLog
		}
	}

	if s.lastOutputRole != "" && s.lastOutputRole != content.Role {
		if ret.lastOutputIsThought {
			if _, err := io.WriteString(s.w, "\n</think>\n"); err != nil {
				return nil, err
			}
			ret.lastOutputIsThought = false
		}
		if _, err := io.WriteString(s.w, "\n\n"); err != nil {
			return nil, err
		}
	}

	print := func(isThought bool, str string) error {
		if !ret.lastOutputIsThought && isThought {
			if _, err := io.WriteString(s.w, "<think>\n"); err != nil {
				return err
			}
			ret.lastOutputIsThought = true
		} else if ret.lastOutputIsThought && !isThought {
			if _, err := io.WriteString(s.w, "\n</think>\n"); err != nil {
				return err
			}
			ret.lastOutputIsThought = false
		}

		color := roleColor
		if isThought && s.isTerminal {
			color = ColorThought
		}
		if color != "" {
			str = color + str + ColorReset
		}
		_, err := io.WriteString(s.w, str)
		return err
	}

	for _, part := range content.Parts {
		switch part := part.(type) {

		case Text:
			err = print(false, string(part))

		case Thought:
			if s.showThoughts {
				err = print(true, string(part))
			}

		case FinishReason:
			err = print(false, fmt.Sprintf("[finish: %s]", string(part)))

		case Usage:
			err = print(false, fmt.Sprintf("[tokens: prompt %d, completion %d]", part.PromptTokens, part.CompletionTokens))

		}
		if err != nil {
			return nil, err
		}
	}

	ret.lastOutputRole = content.Role
	ret.upstream, err = s.upstream.AppendContent(content)
	if err != nil {
		return nil, err
	}
	return ret, nil
}

func (s Output) Contents() []*Content {
	return s.upstream.Contents()
}

func (s Output) SystemPrompt() string {
	return s.upstream.SystemPrompt()
}

func (s Output) Flush() (State, error) {
	ret := s
	if ret.lastOutputIsThought {
		if _, err := io.WriteString(s.w, "\n</think>\n"); err != nil {
			return nil, err
		}
		ret.lastOutputIsThought = false
	}
	if _, err := io.WriteString(s.w, "\n\n"); err != nil {
		return nil, err
	}
	var err error
	ret.upstream, err = s.upstream.Flush()
	if err != nil {
		return nil, err
	}
	ret.lastOutputRole = ""
	return ret, nil
}

func (s Output) Unwrap() State {
	return s.upstream
}
