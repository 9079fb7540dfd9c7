package entsql

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/translate"
	"github.com/zoobzio/entsql/internal/types"
)

// Builder composes a SELECT statement over a root shape.
//
// The first error raised by any call is recorded and returned by Render and
// Build; later calls become no-ops. A Builder is not safe for concurrent use.
type Builder struct {
	root    Shape
	q       *query
	aliases *AliasRegistry
	tr      *translate.Translator
	log     *slog.Logger
	err     error
	opts    options
}

// New creates a builder for statements over root.
func New(root Shape, opts ...Option) *Builder {
	o := newOptions(opts)
	b := &Builder{
		root:    root,
		q:       newQuery(),
		aliases: NewAliasRegistry(),
		log:     o.logger,
		opts:    o,
	}
	b.tr = translate.New(resolver{b: b}, translate.Options{Bind: o.bind, Strict: o.strict})
	return b
}

// resolver exposes the builder's current aliases to the translator.
type resolver struct {
	b *Builder
}

func (r resolver) Alias(shape string) (string, bool) {
	return r.b.aliases.lookup(shape)
}

func (r resolver) Declared(alias string) bool {
	return r.b.aliases.Contains(alias) || r.b.q.declares(alias)
}

// Root returns the root shape.
func (b *Builder) Root() Shape {
	return b.root
}

// Alias registers alias for shape. The first registration of a shape wins.
func (b *Builder) Alias(shape Shape, alias string) *Builder {
	if b.err != nil {
		return b
	}
	recorded, err := b.aliases.Register(shape, alias)
	if err != nil {
		b.fail("alias", err)
		return b
	}
	if !recorded {
		b.log.Debug("entsql: alias ignored, shape already registered", "shape", shape.Name(), "alias", alias)
	}
	return b
}

// Aliases returns the registered aliases in registration order.
func (b *Builder) Aliases() []Alias {
	return b.aliases.Aliases()
}

// Clear discards every clause, alias and recorded error so the builder can
// compose a new statement.
func (b *Builder) Clear() *Builder {
	b.q = newQuery()
	b.aliases = NewAliasRegistry()
	b.err = nil
	return b
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Select returns the SELECT clause.
func (b *Builder) Select() SelectClause {
	if b.err == nil {
		b.q.selectSlot()
	}
	return SelectClause{terminal{b}}
}

// From sets the FROM clause to the root shape's table.
func (b *Builder) From() FromClause {
	return b.FromTable("", "")
}

// FromTable sets the FROM clause. An empty table falls back to the root
// shape name and an empty alias to the root shape's registered alias.
// Calling it again replaces the table and alias.
func (b *Builder) FromTable(table, alias string) FromClause {
	f := FromClause{terminal{b}}
	if b.err != nil {
		return f
	}
	if strings.TrimSpace(table) == "" {
		table = b.root.Name()
	}
	if strings.TrimSpace(table) == "" {
		b.fail("from", render.NewConfigurationError("table", "table name may not be empty"))
		return f
	}
	if alias == "" {
		alias, _ = b.aliases.Lookup(b.root)
	}
	b.q.fromSlot(table, alias)
	return f
}

// Join appends a join on shape's table. The alias is the first non-empty
// value given, else the shape's registered alias; a join without one fails.
func (b *Builder) Join(shape Shape, kind JoinType, alias ...string) JoinClause {
	j := JoinClause{terminal: terminal{b}}
	if b.err != nil {
		return j
	}
	if strings.TrimSpace(shape.Name()) == "" {
		b.fail("join", render.NewConfigurationError("table", "table name may not be empty"))
		return j
	}
	var a string
	for _, candidate := range alias {
		if candidate != "" {
			a = candidate
			break
		}
	}
	if a == "" {
		a, _ = b.aliases.Lookup(shape)
	}
	if a == "" {
		b.fail("join", render.NewConfigurationError("alias", "alias for join on "+shape.Name()+" may not be empty"))
		return j
	}
	if kind == "" {
		kind = InnerJoin
	}
	j.join = b.q.addJoin(kind, shape.Name(), a)
	return j
}

// Where returns the WHERE clause.
func (b *Builder) Where() WhereClause {
	return WhereClause{terminal{b}}
}

// GroupBy returns the GROUP BY clause.
func (b *Builder) GroupBy() GroupByClause {
	return GroupByClause{terminal{b}}
}

// Having returns the HAVING clause.
func (b *Builder) Having() HavingClause {
	return HavingClause{terminal{b}}
}

// OrderBy returns the ORDER BY clause.
func (b *Builder) OrderBy() OrderByClause {
	return OrderByClause{terminal{b}}
}

// Build renders the statement and its bound arguments.
func (b *Builder) Build() (*QueryResult, error) {
	if b.err != nil {
		return nil, b.err
	}
	result, err := b.q.render()
	if err != nil {
		return nil, err
	}
	b.log.Debug("entsql: statement built", "sql", result.SQL, "args", len(result.Args))
	return result, nil
}

// Render renders the statement text.
func (b *Builder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	result, err := b.q.render()
	if err != nil {
		return "", err
	}
	return result.SQL, nil
}

// MustRender renders the statement text and panics on error.
func (b *Builder) MustRender() string {
	sql, err := b.Render()
	if err != nil {
		panic(err)
	}
	return sql
}

// String returns the statement text, or the empty string if it cannot be rendered.
func (b *Builder) String() string {
	sql, err := b.Render()
	if err != nil {
		return ""
	}
	return sql
}

// fail records the first error.
func (b *Builder) fail(op string, err error) {
	if b.err != nil {
		return
	}
	b.err = fmt.Errorf("%s: %w", op, err)
	b.log.Debug("entsql: query error", "op", op, "error", err)
}

// translate renders e, recording any failure.
func (b *Builder) translate(op string, e Expr, bound bool) (types.Fragment, bool) {
	if b.err != nil {
		return types.Fragment{}, false
	}
	f, err := b.tr.Translate(e, bound)
	if err != nil {
		b.fail(op, err)
		return types.Fragment{}, false
	}
	return f, true
}

// format renders exprs and lays them out in format with fmt.Sprintf. Bound
// values inside the expressions keep their placeholder positions.
func (b *Builder) format(op, format string, bound bool, exprs []Expr) (types.Fragment, bool) {
	if b.err != nil {
		return types.Fragment{}, false
	}
	if format == "" {
		b.fail(op, render.NewConfigurationError("format", "format may not be empty"))
		return types.Fragment{}, false
	}
	parts := make([]types.Fragment, len(exprs))
	for i, e := range exprs {
		f, err := b.tr.Translate(e, bound)
		if err != nil {
			b.fail(op, err)
			return types.Fragment{}, false
		}
		parts[i] = f
	}
	f, err := types.Format(format, parts)
	if err != nil {
		b.fail(op, render.NewConfigurationError("format", err.Error()))
		return types.Fragment{}, false
	}
	return f, true
}

// text validates a raw SQL fragment.
func (b *Builder) text(op, sql string) (types.Fragment, bool) {
	if b.err != nil {
		return types.Fragment{}, false
	}
	if strings.TrimSpace(sql) == "" {
		b.fail(op, render.NewConfigurationError("text", "text may not be empty"))
		return types.Fragment{}, false
	}
	return types.Fragment{SQL: sql}, true
}

// terminal provides the rendering methods shared by every clause handle.
type terminal struct {
	b *Builder
}

// Render renders the statement text.
func (t terminal) Render() (string, error) {
	return t.b.Render()
}

// MustRender renders the statement text and panics on error.
func (t terminal) MustRender() string {
	return t.b.MustRender()
}

// Build renders the statement and its bound arguments.
func (t terminal) Build() (*QueryResult, error) {
	return t.b.Build()
}

// String returns the statement text, or the empty string on error.
func (t terminal) String() string {
	return t.b.String()
}

// Err returns the first error recorded by the builder.
func (t terminal) Err() error {
	return t.b.err
}

// Builder returns the underlying builder.
func (t terminal) Builder() *Builder {
	return t.b
}
