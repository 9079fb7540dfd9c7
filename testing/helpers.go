// Package testing provides test utilities for entsql.
package testing

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/entsql"
)

// TestProject builds the DBML project shared by entsql tests.
// Includes Customer, CustomerGroup, Order, OrderLine and Product tables.
func TestProject() *dbml.Project {
	project := dbml.NewProject("shop")

	customers := dbml.NewTable("Customer")
	customers.AddColumn(dbml.NewColumn("Id", "int"))
	customers.AddColumn(dbml.NewColumn("Firstname", "nvarchar"))
	customers.AddColumn(dbml.NewColumn("Lastname", "nvarchar"))
	customers.AddColumn(dbml.NewColumn("Age", "int"))
	customers.AddColumn(dbml.NewColumn("CustomerGroupId", "int"))
	project.AddTable(customers)

	groups := dbml.NewTable("CustomerGroup")
	groups.AddColumn(dbml.NewColumn("Id", "int"))
	groups.AddColumn(dbml.NewColumn("Name", "nvarchar"))
	project.AddTable(groups)

	orders := dbml.NewTable("Order")
	orders.AddColumn(dbml.NewColumn("Id", "int"))
	orders.AddColumn(dbml.NewColumn("CustomerId", "int"))
	project.AddTable(orders)

	lines := dbml.NewTable("OrderLine")
	lines.AddColumn(dbml.NewColumn("Id", "int"))
	lines.AddColumn(dbml.NewColumn("OrderId", "int"))
	lines.AddColumn(dbml.NewColumn("ProductId", "int"))
	project.AddTable(lines)

	products := dbml.NewTable("Product")
	products.AddColumn(dbml.NewColumn("Id", "int"))
	products.AddColumn(dbml.NewColumn("Name", "nvarchar"))
	products.AddColumn(dbml.NewColumn("ProductNumber", "nvarchar"))
	products.AddColumn(dbml.NewColumn("ListPrice", "decimal"))
	project.AddTable(products)

	return project
}

// TestSchema creates a schema over TestProject.
func TestSchema(t testing.TB) *entsql.Schema {
	t.Helper()

	schema, err := entsql.NewSchema(TestProject())
	if err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}
	return schema
}

// AssertSQL compares expected and actual SQL, reporting detailed differences.
func AssertSQL(t *testing.T, expected, actual string) {
	t.Helper()
	if expected != actual {
		t.Errorf("SQL mismatch:\nExpected: %s\nActual:   %s", expected, actual)
	}
}

// AssertRender renders a query and compares the SQL.
func AssertRender(t *testing.T, expected string, q interface{ Render() (string, error) }) {
	t.Helper()
	sql, err := q.Render()
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}
	AssertSQL(t, expected, sql)
}

// AssertArgs checks bound arguments in order.
func AssertArgs(t *testing.T, expected, actual []any) {
	t.Helper()
	if len(expected) == 0 && len(actual) == 0 {
		return
	}
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Args mismatch:\nExpected: %#v\nActual:   %#v", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error but got nil")
	}
}

// AssertErrorIs checks that err matches target.
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error matching %v but got nil", target)
	}
	if !errors.Is(err, target) {
		t.Errorf("Expected error matching %v, got: %v", target, err)
	}
}

// AssertErrorContains checks that error message contains substring.
func AssertErrorContains(t *testing.T, err error, substr string) {
	t.Helper()
	if err == nil {
		t.Fatalf("Expected error containing %q but got nil", substr)
	}
	if !strings.Contains(err.Error(), substr) {
		t.Errorf("Expected error containing %q, got: %v", substr, err)
	}
}

// AssertPanics verifies that a function panics.
func AssertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic but function completed normally")
		}
	}()
	fn()
}

// AssertPanicsWithMessage verifies that a function panics with a specific message.
func AssertPanicsWithMessage(t *testing.T, fn func(), substr string) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("Expected panic containing %q but function completed normally", substr)
			return
		}
		var msg string
		switch v := r.(type) {
		case error:
			msg = v.Error()
		case string:
			msg = v
		default:
			t.Errorf("Panic value is not string or error: %T", r)
			return
		}
		if !strings.Contains(msg, substr) {
			t.Errorf("Expected panic containing %q, got: %s", substr, msg)
		}
	}()
	fn()
}
