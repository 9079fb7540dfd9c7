// Package translate turns expression trees into SQL text fragments.
package translate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/types"
)

// Resolver supplies the alias information a translation needs.
type Resolver interface {
	// Alias returns the alias registered for a shape name.
	Alias(shape string) (string, bool)
	// Declared reports whether alias is declared by the query, either in the
	// registry, on the FROM clause or on a JOIN.
	Declared(alias string) bool
}

// Options controls translation.
type Options struct {
	// Bind emits placeholders for values instead of inlining them.
	Bind bool
	// Strict rejects bound parameter names that are not declared aliases.
	Strict bool
}

// Translator converts expression nodes to SQL fragments.
type Translator struct {
	resolver Resolver
	opts     Options
}

// New creates a translator. A nil resolver behaves as an empty registry.
func New(r Resolver, opts Options) *Translator {
	if r == nil {
		r = noAliases{}
	}
	return &Translator{resolver: r, opts: opts}
}

// Translate renders node as a fragment. When useBound is true, columns are
// qualified with the parameter name they were reached through.
func (t *Translator) Translate(node types.Expr, useBound bool) (types.Fragment, error) {
	if node == nil {
		return types.Fragment{}, render.NewConfigurationError("expression", "expression may not be empty")
	}
	var w types.FragmentBuilder
	if err := t.write(&w, node, useBound); err != nil {
		return types.Fragment{}, err
	}
	return w.Fragment(), nil
}

func (t *Translator) write(w *types.FragmentBuilder, node types.Expr, useBound bool) error {
	switch n := node.(type) {
	case types.Binary:
		op, ok := binaryOps[n.Op]
		if !ok {
			return render.NewUnsupportedOperatorError("binary", string(n.Op), "operator has no SQL mapping")
		}
		if n.Left == nil || n.Right == nil {
			return render.NewConfigurationError("expression", "binary operand may not be empty")
		}
		w.WriteByte('(')
		if err := t.write(w, n.Left, useBound); err != nil {
			return err
		}
		w.WriteByte(' ')
		w.WriteString(op)
		w.WriteByte(' ')
		if err := t.write(w, n.Right, useBound); err != nil {
			return err
		}
		w.WriteByte(')')
		return nil

	case types.Member:
		if n.IsCaptured() {
			t.captured(w, n.Capture())
			return nil
		}
		return t.column(w, n, useBound)

	case types.Constant:
		t.constant(w, n.Value)
		return nil

	case types.Unary:
		if n.Operand == nil {
			return render.NewConfigurationError("expression", "unary operand may not be empty")
		}
		w.WriteString(unaryOps[n.Op])
		return t.write(w, n.Operand, useBound)

	default:
		return render.NewUnsupportedOperatorError(fmt.Sprintf("%T", node), "")
	}
}

var binaryOps = map[types.BinaryOp]string{
	types.EQ:      "=",
	types.NE:      "<>",
	types.GT:      ">",
	types.GE:      ">=",
	types.LT:      "<",
	types.LE:      "<=",
	types.AndAlso: "AND",
	types.OrElse:  "OR",
}

// Operators missing from the map render their operand unprefixed.
var unaryOps = map[types.UnaryOp]string{
	types.Not:    "NOT ",
	types.Negate: "-",
}

func (t *Translator) column(w *types.FragmentBuilder, m types.Member, useBound bool) error {
	if m.Name == "" {
		return render.NewConfigurationError("member", "column name may not be empty")
	}
	if useBound && m.Param != "" {
		if t.opts.Strict && !t.resolver.Declared(m.Param) {
			return render.AliasMismatchError{Param: m.Param, Shape: m.Shape.Name}
		}
		writeQualified(w, m.Param, m.Name)
		return nil
	}
	if alias, ok := t.resolver.Alias(m.Shape.Name); ok {
		writeQualified(w, alias, m.Name)
		return nil
	}
	w.WriteString(m.Name)
	return nil
}

func writeQualified(w *types.FragmentBuilder, alias, name string) {
	w.WriteByte('[')
	w.WriteString(alias)
	w.WriteString("].")
	w.WriteString(name)
}

// constant renders a literal node. Bool constants are truth predicates and
// stay inline in bind mode.
func (t *Translator) constant(w *types.FragmentBuilder, v any) {
	switch b := v.(type) {
	case nil:
		return
	case bool:
		if b {
			w.WriteString("1=1")
		} else {
			w.WriteString("1=0")
		}
		return
	}
	if t.opts.Bind {
		w.Bind(v)
		return
	}
	w.WriteString(Literal(v))
}

// captured renders an outer value. Bools are scalars here, not predicates.
func (t *Translator) captured(w *types.FragmentBuilder, v any) {
	if v == nil {
		return
	}
	if t.opts.Bind {
		w.Bind(v)
		return
	}
	if b, ok := v.(bool); ok {
		if b {
			w.WriteByte('1')
		} else {
			w.WriteByte('0')
		}
		return
	}
	w.WriteString(Literal(v))
}

// Literal formats a non-nil scalar as inline SQL text. Strings are quoted
// with embedded quotes doubled.
func Literal(v any) string {
	switch x := v.(type) {
	case string:
		return Quote(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Quote wraps s in single quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

type noAliases struct{}

func (noAliases) Alias(string) (string, bool) { return "", false }
func (noAliases) Declared(string) bool        { return false }
