package types

// BinaryOp represents a binary expression operator.
type BinaryOp string

const (
	// Comparison operators.
	EQ BinaryOp = "=="
	NE BinaryOp = "!="
	GT BinaryOp = ">"
	GE BinaryOp = ">="
	LT BinaryOp = "<"
	LE BinaryOp = "<="

	// Logical operators.
	AndAlso BinaryOp = "&&"
	OrElse  BinaryOp = "||"

	// Arithmetic, bitwise and string operators. These can appear in an
	// expression tree but have no SQL mapping.
	Add      BinaryOp = "+"
	Subtract BinaryOp = "-"
	Multiply BinaryOp = "*"
	Divide   BinaryOp = "/"
	Modulo   BinaryOp = "%"
	BitAnd   BinaryOp = "&"
	BitOr    BinaryOp = "|"
	BitXor   BinaryOp = "^"
	Concat   BinaryOp = "concat"
)

// UnaryOp represents a unary expression operator.
type UnaryOp string

const (
	Not     UnaryOp = "!"
	Negate  UnaryOp = "-"
	Convert UnaryOp = "convert"
)
