// Package entsql translates typed expressions over entity shapes into SQL and
// assembles them into SELECT statements.
//
// A statement is built through a fluent pipeline whose clauses render in a
// fixed order: SELECT, FROM, JOIN, WHERE, GROUP BY, HAVING, ORDER BY.
// Identifiers carrying an alias are bracket-quoted, string literals are
// single-quoted and every comparison or logical sub-expression is wrapped in
// parentheses, so nesting never depends on operator precedence.
//
// # Basic Usage
//
//	customer := entsql.NewShape("Customer", "Id", "Lastname", "Age")
//
//	sql, err := entsql.New(customer).
//		Select().All().
//		From().
//		Where().Expr(entsql.Eq(customer.Col("Age"), 40)).
//		Render()
//	// sql: SELECT * FROM Customer WHERE (Age = 40)
//
// # Aliases and Joins
//
// Aliases are registered per shape. Expressions spanning several shapes are
// written against bindings, whose parameter name is used as the alias:
//
//	c, cg := customer.As("c"), group.As("cg")
//
//	sql, err := entsql.New(customer).
//		Alias(customer, "c").
//		Alias(group, "cg").
//		Select().All().
//		From().
//		Join(group, entsql.InnerJoin).On(entsql.Eq(c.Col("CustomerGroupId"), cg.Col("Id"))).
//		Render()
//	// sql: SELECT * FROM Customer [c] JOIN CustomerGroup [cg] ON ([c].CustomerGroupId = [cg].Id)
//
// WithStrictAliases makes a binding whose name is not declared anywhere in
// the statement an error instead of silently wrong SQL.
//
// # Values
//
// Values are inlined as literals by default. Literal strings are quoted with
// embedded quotes doubled, but inlining is not a substitute for
// parameterization: use WithBoundParams and Build for untrusted input. Bound
// values render as @p1..@pN placeholders, in statement order, matching the
// returned Args.
//
// # Schema-Validated Shapes
//
// Shapes can be derived from a DBML project or from Go structs, in which case
// Col panics for columns the shape does not declare:
//
//	schema, err := entsql.NewSchema(project)
//	customer := schema.Shape("Customer")
package entsql

import (
	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/types"
)

// Expr is a node in an expression tree.
type Expr = types.Expr

// Member references a column of a shape or a captured value.
type Member = types.Member

// QueryResult contains the rendered SQL and, in bind mode, its arguments.
type QueryResult = types.QueryResult

// BinaryOp represents a binary expression operator.
type BinaryOp = types.BinaryOp

// Re-export binary operators for use with Binary.
const (
	EQ       = types.EQ
	NE       = types.NE
	GT       = types.GT
	GE       = types.GE
	LT       = types.LT
	LE       = types.LE
	AndAlso  = types.AndAlso
	OrElse   = types.OrElse
	Add      = types.Add
	Subtract = types.Subtract
	Multiply = types.Multiply
	Divide   = types.Divide
	Modulo   = types.Modulo
	BitAnd   = types.BitAnd
	BitOr    = types.BitOr
	BitXor   = types.BitXor
	Concat   = types.Concat
)

// UnaryOp represents a unary expression operator.
type UnaryOp = types.UnaryOp

// Re-export unary operators for use with Unary.
const (
	OpNot     = types.Not
	OpNegate  = types.Negate
	OpConvert = types.Convert
)

// JoinType represents the type of SQL join.
type JoinType = types.JoinType

// Re-export join types.
const (
	InnerJoin      = types.InnerJoin
	LeftOuterJoin  = types.LeftOuterJoin
	RightOuterJoin = types.RightOuterJoin
	FullOuterJoin  = types.FullOuterJoin
)

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// Error types.
type (
	ConfigurationError       = render.ConfigurationError
	UnsupportedOperatorError = render.UnsupportedOperatorError
	AliasMismatchError       = render.AliasMismatchError
)

// Sentinels for errors.Is.
var (
	ErrConfiguration       = render.ErrConfiguration
	ErrUnsupportedOperator = render.ErrUnsupportedOperator
	ErrAliasMismatch       = render.ErrAliasMismatch
)
