package logfactory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// interpolate substitutes indexed placeholders {0}, {1}, ... in template
// with the corresponding argument, rendered with fmt.Sprint. {{ and }}
// escape literal braces. An unclosed or non-numeric placeholder, or an
// index with no matching argument, is a recoverable error; callers
// downgrade it to a WARN diagnostic instead of failing the log call.
func interpolate(template string, args []any) (string, error) {
	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); i++ {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", errors.Errorf("unclosed placeholder at offset %d", i)
			}
			idx, err := strconv.Atoi(template[i+1 : i+end])
			if err != nil || idx < 0 {
				return "", errors.Errorf("invalid placeholder %q", template[i:i+end+1])
			}
			if idx >= len(args) {
				return "", errors.Errorf("placeholder {%d} has no matching argument", idx)
			}
			b.WriteString(fmt.Sprint(args[idx]))
			i += end
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", errors.Errorf("unmatched '}' at offset %d", i)
		default:
			b.WriteByte(template[i])
		}
	}
	return b.String(), nil
}

// joinArgs renders args as a comma separated list for diagnostics.
func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, ", ")
}
