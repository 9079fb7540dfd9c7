package entsql

// WhereClause is the WHERE clause. Fragments are separated by single spaces
// and no connective is inserted between them: combine conditions with And or
// Or, either as expressions or as connectives between fragments.
type WhereClause struct {
	terminal
}

func (w WhereClause) expr(e Expr, bound bool) WhereClause {
	if f, ok := w.b.translate("where", e, bound); ok {
		w.b.q.whereSlot().add(f)
	}
	return w
}

func (w WhereClause) keyword(sql string) WhereClause {
	if w.b.err == nil {
		w.b.q.whereSlot().text(sql)
	}
	return w
}

// Expr appends a condition. Columns are qualified with registered aliases.
func (w WhereClause) Expr(e Expr) WhereClause {
	return w.expr(e, false)
}

// Bound appends a condition spanning several shapes. Columns are qualified
// with the parameter names of their bindings.
func (w WhereClause) Bound(e Expr) WhereClause {
	return w.expr(e, true)
}

// Text appends raw SQL.
func (w WhereClause) Text(sql string) WhereClause {
	if f, ok := w.b.text("where", sql); ok {
		w.b.q.whereSlot().add(f)
	}
	return w
}

// Format appends fmt.Sprintf(format, ...) over the rendered expressions.
func (w WhereClause) Format(format string, exprs ...Expr) WhereClause {
	if f, ok := w.b.format("where", format, false, exprs); ok {
		w.b.q.whereSlot().add(f)
	}
	return w
}

// And appends the AND connective.
func (w WhereClause) And() WhereClause {
	return w.keyword("AND")
}

// Or appends the OR connective.
func (w WhereClause) Or() WhereClause {
	return w.keyword("OR")
}

// Open appends an opening parenthesis.
func (w WhereClause) Open() WhereClause {
	return w.keyword("(")
}

// Close appends a closing parenthesis.
func (w WhereClause) Close() WhereClause {
	return w.keyword(")")
}

// GroupBy returns the GROUP BY clause.
func (w WhereClause) GroupBy() GroupByClause {
	return w.b.GroupBy()
}

// Having returns the HAVING clause.
func (w WhereClause) Having() HavingClause {
	return w.b.Having()
}

// OrderBy returns the ORDER BY clause.
func (w WhereClause) OrderBy() OrderByClause {
	return w.b.OrderBy()
}
