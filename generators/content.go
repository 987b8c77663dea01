package generators

import "strings"

type Content struct {
	Role  Role
	Parts []Part
}

// Merge joins two contents of the same role, concatenating adjacent texts and thoughts.
func (c Content) Merge(c2 *Content) (*Content, bool) {
	if c.Role != c2.Role {
		return nil, false
	}

	var parts []Part
	add := func(part Part) {
		if len(parts) > 0 {
			switch prev := parts[len(parts)-1].(type) {
			case Text:
				if text, ok := part.(Text); ok {
					parts[len(parts)-1] = prev + text
					return
				}
			case Thought:
				if thought, ok := part.(Thought); ok {
					parts[len(parts)-1] = prev + thought
					return
				}
			}
		}
		parts = append(parts, part)
	}
	for _, part := range c.Parts {
		add(part)
	}
	for _, part := range c2.Parts {
		add(part)
	}

	return &Content{
		Role:  c.Role,
		Parts: parts,
	}, true
}

func (c *Content) Text() string {
	var b strings.Builder
	for _, part := range c.Parts {
		if text, ok := part.(Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String()
}

// LastText returns the text of the last content with the given role.
func LastText(state State, role Role) string {
	contents := state.Contents()
	for i := len(contents) - 1; i >= 0; i-- {
		if contents[i].Role == role {
			return contents[i].Text()
		}
	}
	return ""
}
