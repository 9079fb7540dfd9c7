package entsql

// HavingClause is the HAVING clause. Fragments are separated by single spaces.
type HavingClause struct {
	terminal
}

func (h HavingClause) add(e Expr, bound bool) HavingClause {
	if f, ok := h.b.translate("having", e, bound); ok {
		h.b.q.havingSlot().add(f)
	}
	return h
}

// Text appends raw SQL, such as "Avg(Age) > 20".
func (h HavingClause) Text(sql string) HavingClause {
	if f, ok := h.b.text("having", sql); ok {
		h.b.q.havingSlot().add(f)
	}
	return h
}

// Format appends fmt.Sprintf(format, ...) over the rendered expressions.
func (h HavingClause) Format(format string, exprs ...Expr) HavingClause {
	if f, ok := h.b.format("having", format, false, exprs); ok {
		h.b.q.havingSlot().add(f)
	}
	return h
}

// Expr appends a condition qualified with registered aliases.
func (h HavingClause) Expr(e Expr) HavingClause {
	return h.add(e, false)
}

// Bound appends a condition qualified with binding parameter names.
func (h HavingClause) Bound(e Expr) HavingClause {
	return h.add(e, true)
}

// And appends the AND connective.
func (h HavingClause) And() HavingClause {
	if h.b.err == nil {
		h.b.q.havingSlot().text("AND")
	}
	return h
}

// Or appends the OR connective.
func (h HavingClause) Or() HavingClause {
	if h.b.err == nil {
		h.b.q.havingSlot().text("OR")
	}
	return h
}

// OrderBy returns the ORDER BY clause.
func (h HavingClause) OrderBy() OrderByClause {
	return h.b.OrderBy()
}
