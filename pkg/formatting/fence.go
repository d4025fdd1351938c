package formatting

import (
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z]*[ \t]*\r?\n(.*?)\r?\n?```$")

// Unfence returns content without a surrounding markdown code fence.
// Models sometimes wrap whole answers in one even when told not to.
// Content that is not entirely fenced is returned trimmed and otherwise unchanged.
func Unfence(content string) string {
	content = strings.TrimSpace(content)
	if m := fencePattern.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return content
}
