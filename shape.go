package entsql

import (
	"fmt"

	"github.com/zoobzio/entsql/internal/render"
	"github.com/zoobzio/entsql/internal/types"
)

// Shape is a named set of columns, usually a table. Its name identifies it in
// the alias registry and is the default table name for FROM and JOIN.
type Shape struct {
	s types.Shape
}

// NewShape creates a shape. Without columns, any column name is accepted.
func NewShape(name string, columns ...string) Shape {
	return Shape{s: types.NewShape(name, columns...)}
}

// Name returns the shape name.
func (s Shape) Name() string {
	return s.s.Name
}

// Columns returns the declared columns in declaration order.
func (s Shape) Columns() []string {
	return s.s.Columns()
}

// TryCol returns a column reference, or an error if the shape declares
// columns and name is not one of them.
func (s Shape) TryCol(name string) (Expr, error) {
	return s.member(name, "")
}

// Col returns a column reference.
// Panics if the column is not declared on the shape.
// Use TryCol for runtime validation.
func (s Shape) Col(name string) Expr {
	m, err := s.TryCol(name)
	if err != nil {
		panic(err)
	}
	return m
}

// As binds the shape to a parameter name. Columns reached through the
// binding render as [param].Name in multi-entity expressions.
func (s Shape) As(param string) Binding {
	return Binding{shape: s, param: param}
}

func (s Shape) member(name, param string) (Expr, error) {
	if name == "" {
		return nil, render.NewConfigurationError("column", fmt.Sprintf("column name on %s may not be empty", s.s.Name))
	}
	if !s.s.HasColumn(name) {
		return nil, render.NewConfigurationError("column", fmt.Sprintf("%s has no column %q", s.s.Name, name))
	}
	return types.Member{Shape: s.s, Name: name, Param: param}, nil
}

// Binding is a shape reached through a named parameter, the "c" in c.Age.
type Binding struct {
	shape Shape
	param string
}

// Param returns the parameter name.
func (b Binding) Param() string {
	return b.param
}

// Shape returns the bound shape.
func (b Binding) Shape() Shape {
	return b.shape
}

// TryCol returns a bound column reference, or an error if the column is not
// declared on the shape.
func (b Binding) TryCol(name string) (Expr, error) {
	return b.shape.member(name, b.param)
}

// Col returns a bound column reference.
// Panics if the column is not declared on the shape.
func (b Binding) Col(name string) Expr {
	m, err := b.TryCol(name)
	if err != nil {
		panic(err)
	}
	return m
}
