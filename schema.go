package entsql

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/zoobzio/dbml"
)

// Schema resolves shapes from a DBML project.
type Schema struct {
	project *dbml.Project
	shapes  map[string]Shape
}

// NewSchema creates a schema from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		shapes:  make(map[string]Shape),
	}

	for _, table := range project.Tables {
		if table == nil || table.Name == "" {
			continue
		}
		columns := make([]string, 0, len(table.Columns))
		for _, col := range table.Columns {
			if col == nil {
				continue
			}
			columns = append(columns, col.Name)
		}
		s.shapes[table.Name] = NewShape(table.Name, columns...)
	}

	return s, nil
}

// TryShape returns the shape for a table, or an error if the table is not in the schema.
func (s *Schema) TryShape(table string) (Shape, error) {
	shape, ok := s.shapes[table]
	if !ok {
		return Shape{}, fmt.Errorf("table '%s' not found in schema", table)
	}
	return shape, nil
}

// Shape returns the shape for a table.
// Panics if the table is not in the schema.
func (s *Schema) Shape(table string) Shape {
	shape, err := s.TryShape(table)
	if err != nil {
		panic(err)
	}
	return shape
}

// Tables returns the table names in the schema, sorted.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.shapes))
	for name := range s.shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ShapeOf derives a shape from struct type T. The shape is named after the
// type and its columns are the exported fields, renamed by a `db` tag.
// Fields tagged `db:"-"` are skipped.
func ShapeOf[T any]() Shape {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("entsql: ShapeOf requires a struct type, got %s", t))
	}

	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("db"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		columns = append(columns, name)
	}
	return NewShape(t.Name(), columns...)
}
