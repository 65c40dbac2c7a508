package resolve

import "strings"

// ComposeClassNames joins class-name segments with single spaces. Empty and
// whitespace-only segments are omitted, so the result never carries leading,
// trailing, or doubled separators.
func ComposeClassNames(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
