package entsql

// GroupByClause is the GROUP BY clause. Columns are separated by commas.
type GroupByClause struct {
	terminal
}

func (g GroupByClause) column(e Expr, bound bool) GroupByClause {
	if f, ok := g.b.translate("group by", e, bound); ok {
		g.b.q.groupBySlot().add(f)
	}
	return g
}

// Column groups by an expression.
func (g GroupByClause) Column(e Expr) GroupByClause {
	return g.column(e, false)
}

// Columns groups by several expressions.
func (g GroupByClause) Columns(exprs ...Expr) GroupByClause {
	for _, e := range exprs {
		g = g.column(e, false)
	}
	return g
}

// BoundColumns groups by expressions qualified with their bindings' parameter names.
func (g GroupByClause) BoundColumns(exprs ...Expr) GroupByClause {
	for _, e := range exprs {
		g = g.column(e, true)
	}
	return g
}

// Text appends raw SQL.
func (g GroupByClause) Text(sql string) GroupByClause {
	if f, ok := g.b.text("group by", sql); ok {
		g.b.q.groupBySlot().add(f)
	}
	return g
}

// Having returns the HAVING clause.
func (g GroupByClause) Having() HavingClause {
	return g.b.Having()
}

// OrderBy returns the ORDER BY clause.
func (g GroupByClause) OrderBy() OrderByClause {
	return g.b.OrderBy()
}
