package entsql

// FromClause is the FROM clause of a statement.
type FromClause struct {
	terminal
}

// Join appends a join on shape's table.
func (f FromClause) Join(shape Shape, kind JoinType, alias ...string) JoinClause {
	return f.b.Join(shape, kind, alias...)
}

// Where returns the WHERE clause.
func (f FromClause) Where() WhereClause {
	return f.b.Where()
}

// GroupBy returns the GROUP BY clause.
func (f FromClause) GroupBy() GroupByClause {
	return f.b.GroupBy()
}

// OrderBy returns the ORDER BY clause.
func (f FromClause) OrderBy() OrderByClause {
	return f.b.OrderBy()
}
