package entsql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/types"
)

// render assembles the statement in clause order. It reads the query
// without modifying it, so repeated calls yield the same result.
func (q *query) render() (*types.QueryResult, error) {
	if q.from == nil {
		return nil, render.NewConfigurationError("from", "a FROM clause is required before rendering")
	}

	var sb strings.Builder
	var n types.Numberer

	if err := q.renderSelect(&sb, &n); err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	sb.WriteString(" FROM ")
	sb.WriteString(q.from.table)
	if q.from.alias != "" {
		writeAlias(&sb, q.from.alias)
	}

	for _, j := range q.joins {
		if j.on.empty() {
			return nil, render.NewConfigurationError("join", fmt.Sprintf("join on %s [%s] requires an ON condition", j.table, j.alias))
		}
		sb.WriteByte(' ')
		sb.WriteString(string(j.kind))
		sb.WriteByte(' ')
		sb.WriteString(j.table)
		writeAlias(&sb, j.alias)
		sb.WriteString(" ON ")
		if err := j.on.writeBody(&sb, &n); err != nil {
			return nil, fmt.Errorf("join: %w", err)
		}
	}

	for _, c := range []*clause{q.where, q.groupBy, q.having, q.orderBy} {
		if err := c.write(&sb, &n); err != nil {
			return nil, fmt.Errorf("%s: %w", strings.ToLower(c.keyword), err)
		}
	}

	return &types.QueryResult{SQL: sb.String(), Args: n.Args()}, nil
}

func (q *query) renderSelect(sb *strings.Builder, n *types.Numberer) error {
	sb.WriteString("SELECT")
	sel := q.sel
	if sel != nil && sel.distinct {
		sb.WriteString(" DISTINCT")
	}
	if sel != nil && sel.top > 0 {
		sb.WriteString(" TOP ")
		sb.WriteString(strconv.Itoa(sel.top))
		if sel.percent {
			sb.WriteString(" PERCENT")
		}
	}
	sb.WriteByte(' ')
	if sel == nil || sel.columns.empty() {
		sb.WriteByte('*')
		return nil
	}
	return sel.columns.writeBody(sb, n)
}

func writeAlias(sb *strings.Builder, alias string) {
	sb.WriteString(" [")
	sb.WriteString(alias)
	sb.WriteByte(']')
}
