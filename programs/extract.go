package programs

import "strings"

const fence = "```"

// Extract takes a program out of an oracle reply. The first fenced block wins;
// a reply without fences is taken whole.
func Extract(reply string) Program {
	start := strings.Index(reply, fence)
	if start < 0 {
		return Parse(strings.TrimSpace(reply))
	}
	body := reply[start+len(fence):]
	// language tag
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		body = body[nl+1:]
	}
	if end := strings.Index(body, fence); end >= 0 {
		body = body[:end]
	}
	return Parse(strings.Trim(body, "\n"))
}
