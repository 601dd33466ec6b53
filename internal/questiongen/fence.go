package questiongen

import "strings"

// stripFences removes a surrounding markdown code fence (``` or ```json)
// from s. Text without a fence is returned trimmed.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string ("json", "JSON", ...) up to the first newline.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		if info := strings.TrimSpace(s[:i]); !strings.ContainsAny(info, "{[") {
			s = s[i+1:]
		}
	} else {
		s = strings.TrimLeft(s, "jsonJSON")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
