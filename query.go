package entsql

import "github.com/zoobzio/entsql/internal/types"

// query holds the clause slots of one statement. Slots are created on first
// access and keep accumulating fragments until the query is replaced.
type query struct {
	sel     *selectState
	from    *fromState
	where   *clause
	groupBy *clause
	having  *clause
	orderBy *clause
	joins   []*joinState
}

func newQuery() *query {
	return &query{}
}

func (q *query) selectSlot() *selectState {
	if q.sel == nil {
		q.sel = &selectState{columns: newClause("SELECT", listSeparator)}
	}
	return q.sel
}

// fromSlot returns the FROM slot, resetting its table and alias on every access.
func (q *query) fromSlot(table, alias string) *fromState {
	if q.from == nil {
		q.from = &fromState{}
	}
	q.from.table = table
	q.from.alias = alias
	return q.from
}

func (q *query) addJoin(kind types.JoinType, table, alias string) *joinState {
	j := &joinState{
		kind:  kind,
		table: table,
		alias: alias,
		on:    newClause("ON", predicateSeparator),
	}
	q.joins = append(q.joins, j)
	return j
}

func (q *query) whereSlot() *clause {
	if q.where == nil {
		q.where = newClause("WHERE", predicateSeparator)
	}
	return q.where
}

func (q *query) groupBySlot() *clause {
	if q.groupBy == nil {
		q.groupBy = newClause("GROUP BY", listSeparator)
	}
	return q.groupBy
}

func (q *query) havingSlot() *clause {
	if q.having == nil {
		q.having = newClause("HAVING", predicateSeparator)
	}
	return q.having
}

func (q *query) orderBySlot() *clause {
	if q.orderBy == nil {
		q.orderBy = newClause("ORDER BY", listSeparator)
	}
	return q.orderBy
}

// declares reports whether alias is used by the FROM clause or a JOIN.
func (q *query) declares(alias string) bool {
	if q.from != nil && q.from.alias == alias {
		return true
	}
	for _, j := range q.joins {
		if j.alias == alias {
			return true
		}
	}
	return false
}
