package entsql

import "github.com/zoobzio/entsql/internal/types"

// OrderByClause is the ORDER BY clause. Terms are separated by commas.
type OrderByClause struct {
	terminal
}

func (o OrderByClause) term(e Expr, bound bool, dir types.Direction) OrderByClause {
	if f, ok := o.b.translate("order by", e, bound); ok {
		f.SQL += " " + string(dir)
		o.b.q.orderBySlot().add(f)
	}
	return o
}

func direction(asc bool) types.Direction {
	if asc {
		return types.ASC
	}
	return types.DESC
}

// Asc orders by an expression ascending.
func (o OrderByClause) Asc(e Expr) OrderByClause {
	return o.term(e, false, types.ASC)
}

// Desc orders by an expression descending.
func (o OrderByClause) Desc(e Expr) OrderByClause {
	return o.term(e, false, types.DESC)
}

// Column orders by an expression in the given direction.
func (o OrderByClause) Column(e Expr, asc bool) OrderByClause {
	return o.term(e, false, direction(asc))
}

// Columns orders by several expressions, each ascending.
func (o OrderByClause) Columns(exprs ...Expr) OrderByClause {
	for _, e := range exprs {
		o = o.term(e, false, types.ASC)
	}
	return o
}

// BoundColumn orders by an expression qualified with its binding's parameter name.
func (o OrderByClause) BoundColumn(e Expr, asc bool) OrderByClause {
	return o.term(e, true, direction(asc))
}

// Text appends raw SQL.
func (o OrderByClause) Text(sql string) OrderByClause {
	if f, ok := o.b.text("order by", sql); ok {
		o.b.q.orderBySlot().add(f)
	}
	return o
}
