package entsql

import (
	"strings"

	"github.com/zoobzio/entsql/internal/types"
)

// Clause separators.
const (
	listSeparator      = ","
	predicateSeparator = " "
)

// clause is an ordered list of rendered fragments.
type clause struct {
	keyword   string
	separator string
	fragments []types.Fragment
}

func newClause(keyword, separator string) *clause {
	return &clause{keyword: keyword, separator: separator}
}

func (c *clause) add(f types.Fragment) {
	c.fragments = append(c.fragments, f)
}

func (c *clause) text(sql string) {
	c.add(types.Fragment{SQL: sql})
}

func (c *clause) empty() bool {
	return c == nil || len(c.fragments) == 0
}

// writeBody writes the fragments joined by the clause separator.
func (c *clause) writeBody(sb *strings.Builder, n *types.Numberer) error {
	for i, f := range c.fragments {
		if i > 0 {
			sb.WriteString(c.separator)
		}
		if err := n.Write(sb, f); err != nil {
			return err
		}
	}
	return nil
}

// write writes " KEYWORD body". Empty clauses write nothing.
func (c *clause) write(sb *strings.Builder, n *types.Numberer) error {
	if c.empty() {
		return nil
	}
	sb.WriteByte(' ')
	sb.WriteString(c.keyword)
	sb.WriteByte(' ')
	return c.writeBody(sb, n)
}

// selectState is the SELECT slot.
type selectState struct {
	columns  *clause
	top      int
	distinct bool
	percent  bool
}

// fromState is the FROM slot.
type fromState struct {
	table string
	alias string
}

// joinState is one JOIN with its ON condition.
type joinState struct {
	on    *clause
	kind  types.JoinType
	table string
	alias string
}
