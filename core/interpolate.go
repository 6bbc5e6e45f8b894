package core

import (
	"fmt"
	"strconv"
	"strings"
)

// InterpolationError reports a message template that cannot be rendered
// with the supplied arguments.
type InterpolationError struct {
	Template string
	Offset   int
	Reason   string
}

func (e *InterpolationError) Error() string {
	return fmt.Sprintf("interpolate %q at offset %d: %s", e.Template, e.Offset, e.Reason)
}

// Interpolate substitutes arguments into a message template.
//
// {N} refers to positional argument N, {} to the next positional
// argument and {name} to the last field with that key. {{ and }} are
// literal braces. A template is returned unchanged when there are no
// arguments at all, so plain messages may contain braces freely.
// Arguments the template does not reference are ignored.
func Interpolate(template string, args []interface{}, fields []Field) (string, error) {
	if len(args) == 0 && len(fields) == 0 {
		return template, nil
	}

	var b strings.Builder
	b.Grow(len(template) + 16)
	next := 0
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch c {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", &InterpolationError{Template: template, Offset: i, Reason: "unclosed '{'"}
			}
			ref := template[i+1 : i+1+end]
			if ref == "" {
				ref = strconv.Itoa(next)
				next++
			}
			s, reason := resolve(ref, args, fields)
			if reason != "" {
				return "", &InterpolationError{Template: template, Offset: i, Reason: reason}
			}
			b.WriteString(s)
			i += end + 1
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", &InterpolationError{Template: template, Offset: i, Reason: "single '}'"}
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// resolve renders one placeholder; a non-empty reason means failure.
func resolve(ref string, args []interface{}, fields []Field) (string, string) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 || n >= len(args) {
			return "", fmt.Sprintf("missing positional argument {%d}", n)
		}
		return fmt.Sprint(args[n]), ""
	}
	for i := len(fields) - 1; i >= 0; i-- {
		if fields[i].Key == ref {
			return fields[i].StringValue(), ""
		}
	}
	return "", fmt.Sprintf("missing keyword argument {%s}", ref)
}
