package entsql

import "github.com/zoobzio/entsql/internal/render"

// JoinClause is one JOIN and its ON condition. ON fragments are separated by
// single spaces.
type JoinClause struct {
	terminal
	join *joinState
}

// On appends a condition to the join. Columns are qualified with the
// parameter names of their bindings:
//
//	c, cg := customer.As("c"), group.As("cg")
//	On(entsql.Eq(c.Col("CustomerGroupId"), cg.Col("Id")))
//	// ON ([c].CustomerGroupId = [cg].Id)
func (j JoinClause) On(e Expr) JoinClause {
	if !j.current() {
		return j
	}
	if f, ok := j.b.translate("join", e, true); ok {
		j.join.on.add(f)
	}
	return j
}

// Text appends raw SQL to the ON condition.
func (j JoinClause) Text(sql string) JoinClause {
	if !j.current() {
		return j
	}
	if f, ok := j.b.text("join", sql); ok {
		j.join.on.add(f)
	}
	return j
}

// current reports whether the handle's join belongs to the builder's
// statement. A handle kept across Clear records an error instead.
func (j JoinClause) current() bool {
	if j.join == nil {
		return false
	}
	for _, s := range j.b.q.joins {
		if s == j.join {
			return true
		}
	}
	j.b.fail("join", render.NewConfigurationError("join", "join on "+j.join.table+" belongs to a cleared statement"))
	return false
}

// Join appends another join.
func (j JoinClause) Join(shape Shape, kind JoinType, alias ...string) JoinClause {
	return j.b.Join(shape, kind, alias...)
}

// Where returns the WHERE clause.
func (j JoinClause) Where() WhereClause {
	return j.b.Where()
}

// GroupBy returns the GROUP BY clause.
func (j JoinClause) GroupBy() GroupByClause {
	return j.b.GroupBy()
}

// OrderBy returns the ORDER BY clause.
func (j JoinClause) OrderBy() OrderByClause {
	return j.b.OrderBy()
}
