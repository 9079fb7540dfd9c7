package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Fragment is a piece of rendered SQL text. In bind mode Args holds the bound
// values and Marks the byte offsets in SQL where their placeholders belong.
// The text itself never carries placeholder syntax.
type Fragment struct {
	SQL   string
	Args  []any
	Marks []int
}

// QueryResult contains the rendered SQL and, in bind mode, the positional
// arguments for its @pN placeholders.
type QueryResult struct {
	SQL  string
	Args []any
}

// FragmentBuilder accumulates fragment text and bound values.
type FragmentBuilder struct {
	sb    strings.Builder
	args  []any
	marks []int
}

// WriteString appends raw text.
func (w *FragmentBuilder) WriteString(s string) {
	w.sb.WriteString(s)
}

// WriteByte appends a single byte of raw text.
func (w *FragmentBuilder) WriteByte(c byte) error {
	return w.sb.WriteByte(c)
}

// Bind records v as a bound value at the current end of the text.
func (w *FragmentBuilder) Bind(v any) {
	w.marks = append(w.marks, w.sb.Len())
	w.args = append(w.args, v)
}

// Append splices f onto the end, shifting its placeholder offsets.
func (w *FragmentBuilder) Append(f Fragment) {
	base := w.sb.Len()
	w.sb.WriteString(f.SQL)
	for i, m := range f.Marks {
		w.marks = append(w.marks, base+m)
		w.args = append(w.args, f.Args[i])
	}
}

// Fragment returns the accumulated fragment.
func (w *FragmentBuilder) Fragment() Fragment {
	return Fragment{SQL: w.sb.String(), Args: w.args, Marks: w.marks}
}

// formatToken stands in for an expression while fmt lays out a format
// string. The prefix has no proper prefix that is also a suffix, so it
// cannot be produced by text adjacent to a token.
const (
	formatToken    = "\x00\x01entsql\x02"
	formatTokenEnd = '\x03'
)

// ErrFormatVerb reports a format verb that did not render an expression as text.
var ErrFormatVerb = errors.New("format verbs must render expressions with %s or %v")

// Format lays out format with fmt.Sprintf, substituting the text of each
// part for its verb. Bound values inside the parts keep their positions.
func Format(format string, parts []Fragment) (Fragment, error) {
	if strings.Contains(format, formatToken) {
		return Fragment{}, fmt.Errorf("format contains a reserved byte sequence")
	}
	tokens := make([]any, len(parts))
	for i := range parts {
		tokens[i] = formatToken + strconv.Itoa(i) + string(formatTokenEnd)
	}
	out := fmt.Sprintf(format, tokens...)

	var w FragmentBuilder
	seen := make([]bool, len(parts))
	for {
		start := strings.Index(out, formatToken)
		if start < 0 {
			w.WriteString(out)
			break
		}
		w.WriteString(out[:start])
		rest := out[start+len(formatToken):]
		end := strings.IndexByte(rest, formatTokenEnd)
		if end < 0 {
			return Fragment{}, ErrFormatVerb
		}
		idx, err := strconv.Atoi(rest[:end])
		if err != nil || idx < 0 || idx >= len(parts) {
			return Fragment{}, ErrFormatVerb
		}
		w.Append(parts[idx])
		seen[idx] = true
		out = rest[end+1:]
	}
	for _, ok := range seen {
		if !ok {
			return Fragment{}, ErrFormatVerb
		}
	}
	return w.Fragment(), nil
}

// Numberer assigns @pN names to fragment placeholders in the order they are written.
type Numberer struct {
	args []any
}

// Write writes f, inserting numbered placeholders at its marks and
// collecting the matching arguments.
func (n *Numberer) Write(sb *strings.Builder, f Fragment) error {
	if len(f.Marks) != len(f.Args) {
		return fmt.Errorf("fragment has %d placeholders for %d arguments", len(f.Marks), len(f.Args))
	}
	prev := 0
	for i, m := range f.Marks {
		if m < prev || m > len(f.SQL) {
			return fmt.Errorf("placeholder offset %d out of range in fragment %q", m, f.SQL)
		}
		sb.WriteString(f.SQL[prev:m])
		n.args = append(n.args, f.Args[i])
		sb.WriteString("@p")
		sb.WriteString(strconv.Itoa(len(n.args)))
		prev = m
	}
	sb.WriteString(f.SQL[prev:])
	return nil
}

// Args returns the arguments collected so far.
func (n *Numberer) Args() []any {
	return n.args
}
