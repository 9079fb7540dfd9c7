package entsql

import (
	"reflect"

	"github.com/zoobzio/entsql/internal/types"
)

// Helper functions for building expression trees. Operands that are not
// already expressions are wrapped as constants, so Eq(c.Col("Age"), 40)
// compares the column with the literal 40.

func operand(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	return types.Constant{Value: deref(v)}
}

// deref follows pointers to the value they hold. Nil pointers become nil.
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return v
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

// Const creates a constant. Nil renders as no text, strings are quoted and
// bools render as the truth predicates 1=1 and 1=0.
func Const(v any) Expr {
	return types.Constant{Value: deref(v)}
}

// Ref captures the variable p points to. The value is read when the
// expression is translated and rendered as a literal, not a column.
// A nil p captures nil.
func Ref[T any](p *T) Expr {
	return types.Member{Capture: func() any {
		if p == nil {
			return nil
		}
		return deref(*p)
	}}
}

// Binary creates a binary expression with an arbitrary operator. Operators
// without a SQL mapping fail at translation.
func Binary(op BinaryOp, left, right any) Expr {
	return types.Binary{Op: op, Left: operand(left), Right: operand(right)}
}

// Unary creates a unary expression.
func Unary(op UnaryOp, v any) Expr {
	return types.Unary{Op: op, Operand: operand(v)}
}

// Eq creates an equality comparison.
func Eq(left, right any) Expr {
	return Binary(types.EQ, left, right)
}

// Ne creates an inequality comparison.
func Ne(left, right any) Expr {
	return Binary(types.NE, left, right)
}

// Gt creates a greater-than comparison.
func Gt(left, right any) Expr {
	return Binary(types.GT, left, right)
}

// Ge creates a greater-or-equal comparison.
func Ge(left, right any) Expr {
	return Binary(types.GE, left, right)
}

// Lt creates a less-than comparison.
func Lt(left, right any) Expr {
	return Binary(types.LT, left, right)
}

// Le creates a less-or-equal comparison.
func Le(left, right any) Expr {
	return Binary(types.LE, left, right)
}

// And combines conditions with AND, folding left: And(a, b, c) is ((a AND b) AND c).
func And(left, right Expr, more ...Expr) Expr {
	return fold(types.AndAlso, left, right, more)
}

// Or combines conditions with OR, folding left.
func Or(left, right Expr, more ...Expr) Expr {
	return fold(types.OrElse, left, right, more)
}

func fold(op BinaryOp, left, right Expr, more []Expr) Expr {
	e := Expr(types.Binary{Op: op, Left: left, Right: right})
	for _, next := range more {
		e = types.Binary{Op: op, Left: e, Right: next}
	}
	return e
}

// Not negates a condition.
func Not(e Expr) Expr {
	return types.Unary{Op: types.Not, Operand: e}
}

// Negate creates an arithmetic negation.
func Negate(v any) Expr {
	return Unary(types.Negate, v)
}
