package types

// Shape is a named set of columns. The name identifies the shape for alias
// lookup and is the default table name.
// This is exported from the internal package so the translator can use it,
// but external users cannot import this package.
type Shape struct {
	columns map[string]struct{}
	Name    string
	order   []string
}

// NewShape creates a shape. An empty column list means any member name is accepted.
func NewShape(name string, columns ...string) Shape {
	s := Shape{Name: name}
	if len(columns) == 0 {
		return s
	}
	s.columns = make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := s.columns[c]; dup {
			continue
		}
		s.columns[c] = struct{}{}
		s.order = append(s.order, c)
	}
	return s
}

// GetName returns the shape name.
func (s Shape) GetName() string {
	return s.Name
}

// Columns returns the declared columns in declaration order.
func (s Shape) Columns() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// HasColumns reports whether the shape declares its columns.
func (s Shape) HasColumns() bool {
	return len(s.columns) > 0
}

// HasColumn reports whether name is addressable on the shape.
// Shapes without declared columns accept any name.
func (s Shape) HasColumn(name string) bool {
	if len(s.columns) == 0 {
		return true
	}
	_, ok := s.columns[name]
	return ok
}
