package types

// Expr is a node in an expression tree.
// The set of node kinds is closed: Binary, Member, Constant and Unary.
// This is exported from the internal package so the translator can use it,
// but external users cannot import this package.
type Expr interface {
	IsExpr()
}

// Binary applies a binary operator to two operands.
type Binary struct {
	Left  Expr
	Right Expr
	Op    BinaryOp
}

// Member references a column of a shape, or a captured outer value.
type Member struct {
	// Capture is set for captured values. It is evaluated at translation time
	// and the result is rendered as a literal instead of a column.
	Capture func() any
	Shape   Shape
	Name    string
	// Param is the bound parameter name the member was reached through
	// (the "c" in c.Age). Empty when the member is unbound.
	Param string
}

// Constant is a literal value.
type Constant struct {
	Value any
}

// Unary applies a unary operator to an operand.
type Unary struct {
	Operand Expr
	Op      UnaryOp
}

// Implement Expr interface.
func (Binary) IsExpr()   {}
func (Member) IsExpr()   {}
func (Constant) IsExpr() {}
func (Unary) IsExpr()    {}

// IsCaptured reports whether the member holds a captured value rather than a column.
func (m Member) IsCaptured() bool {
	return m.Capture != nil
}
