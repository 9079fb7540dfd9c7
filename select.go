package entsql

import (
	"strconv"

	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/types"
)

// SelectClause appends to the SELECT list. Columns are separated by commas;
// an empty list renders as *.
type SelectClause struct {
	terminal
}

func (s SelectClause) add(f types.Fragment) SelectClause {
	s.b.q.selectSlot().columns.add(f)
	return s
}

// All selects every column.
func (s SelectClause) All() SelectClause {
	if s.b.err != nil {
		return s
	}
	return s.add(types.Fragment{SQL: "*"})
}

// AllOf selects every column of shape, qualified with its registered alias.
func (s SelectClause) AllOf(shape Shape) SelectClause {
	if s.b.err != nil {
		return s
	}
	if alias, ok := s.b.aliases.Lookup(shape); ok {
		return s.add(types.Fragment{SQL: "[" + alias + "].*"})
	}
	return s.add(types.Fragment{SQL: shape.Name() + ".*"})
}

// AllFrom selects every column of the table declared with alias.
func (s SelectClause) AllFrom(alias string) SelectClause {
	if s.b.err != nil {
		return s
	}
	if alias == "" {
		s.b.fail("select", render.NewConfigurationError("alias", "alias may not be empty"))
		return s
	}
	return s.add(types.Fragment{SQL: "[" + alias + "].*"})
}

// Distinct adds DISTINCT to the SELECT.
func (s SelectClause) Distinct() SelectClause {
	if s.b.err != nil {
		return s
	}
	s.b.q.selectSlot().distinct = true
	return s
}

// Top limits the result to n rows.
func (s SelectClause) Top(n int) SelectClause {
	return s.top(n, false)
}

// TopPercent limits the result to n percent of the rows.
func (s SelectClause) TopPercent(n int) SelectClause {
	if n > 100 {
		s.b.fail("select", render.NewConfigurationError("top", "percent may not exceed 100, got "+strconv.Itoa(n)))
		return s
	}
	return s.top(n, true)
}

func (s SelectClause) top(n int, percent bool) SelectClause {
	if s.b.err != nil {
		return s
	}
	if n <= 0 {
		s.b.fail("select", render.NewConfigurationError("top", "row count must be positive, got "+strconv.Itoa(n)))
		return s
	}
	sel := s.b.q.selectSlot()
	sel.top = n
	sel.percent = percent
	return s
}

// Column selects an expression, optionally renamed with AS [alias].
// Columns are qualified with registered aliases.
func (s SelectClause) Column(e Expr, alias ...string) SelectClause {
	return s.column(e, false, alias)
}

// Columns selects several expressions.
func (s SelectClause) Columns(exprs ...Expr) SelectClause {
	for _, e := range exprs {
		s = s.column(e, false, nil)
	}
	return s
}

// BoundColumn selects an expression qualified with its binding's parameter name.
func (s SelectClause) BoundColumn(e Expr, alias ...string) SelectClause {
	return s.column(e, true, alias)
}

// BoundColumns selects several bound expressions.
func (s SelectClause) BoundColumns(exprs ...Expr) SelectClause {
	for _, e := range exprs {
		s = s.column(e, true, nil)
	}
	return s
}

func (s SelectClause) column(e Expr, bound bool, alias []string) SelectClause {
	f, ok := s.b.translate("select", e, bound)
	if !ok {
		return s
	}
	if len(alias) > 0 && alias[0] != "" {
		f.SQL += " AS [" + alias[0] + "]"
	}
	return s.add(f)
}

// Text appends raw SQL, such as "COUNT(*) AS [Cnt]".
func (s SelectClause) Text(sql string) SelectClause {
	f, ok := s.b.text("select", sql)
	if !ok {
		return s
	}
	return s.add(f)
}

// Format appends fmt.Sprintf(format, ...) where each argument is the
// rendered text of the matching expression, for example
// Format("Avg(%s) AS [AverageAge]", customer.Col("Age")).
func (s SelectClause) Format(format string, exprs ...Expr) SelectClause {
	f, ok := s.b.format("select", format, false, exprs)
	if !ok {
		return s
	}
	return s.add(f)
}

// From sets the FROM clause to the root shape's table.
func (s SelectClause) From() FromClause {
	return s.b.From()
}

// FromTable sets the FROM clause to an explicit table and alias.
func (s SelectClause) FromTable(table, alias string) FromClause {
	return s.b.FromTable(table, alias)
}
