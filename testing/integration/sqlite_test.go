package integration

import (
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/zoobzio/entsql"
)

// SQLiteDB wraps an in-memory SQLite database for testing.
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB creates a new in-memory SQLite database.
func NewSQLiteDB(t *testing.T) *SQLiteDB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open SQLite: %v", err)
	}
	// Each connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	return &SQLiteDB{db: db}
}

// Close closes the SQLite database.
func (s *SQLiteDB) Close(t *testing.T) {
	t.Helper()
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			t.Logf("Warning: failed to close database: %v", err)
		}
	}
}

// Exec executes a SQL statement.
func (s *SQLiteDB) Exec(t *testing.T, sql string, args ...any) {
	t.Helper()
	_, err := s.db.Exec(sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, sql)
	}
}

// QueryRow executes a query and returns a single row.
func (s *SQLiteDB) QueryRow(t *testing.T, sql string, args ...any) *sql.Row {
	t.Helper()
	return s.db.QueryRow(sql, args...)
}

// Query executes a query and returns rows.
func (s *SQLiteDB) Query(t *testing.T, sql string, args ...any) *sql.Rows {
	t.Helper()
	rows, err := s.db.Query(sql, args...)
	if err != nil {
		t.Fatalf("Failed to execute query: %v\nSQL: %s", err, sql)
	}
	return rows
}

// Count runs a rendered statement and counts the rows it returns.
func (s *SQLiteDB) Count(t *testing.T, result *entsql.QueryResult) int {
	t.Helper()
	rows := s.Query(t, result.SQL, sqliteArgs(result.Args)...)
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Failed to read rows: %v\nSQL: %s", err, result.SQL)
	}
	return n
}

// sqliteArgs names bound values after their @pN placeholders.
func sqliteArgs(args []any) []any {
	named := make([]any, len(args))
	for i, a := range args {
		named[i] = sql.Named(fmt.Sprintf("p%d", i+1), a)
	}
	return named
}

// setupSQLiteSchema creates and seeds the shop tables.
func setupSQLiteSchema(t *testing.T, db *SQLiteDB) {
	t.Helper()
	for _, stmt := range seedStatements {
		db.Exec(t, stmt)
	}
}

func TestSQLiteIntegration_Scenarios(t *testing.T) {
	db := NewSQLiteDB(t)
	defer db.Close(t)
	setupSQLiteSchema(t, db)

	s := newShop(t)
	for _, sc := range scenarios() {
		t.Run(sc.name, func(t *testing.T) {
			result, err := sc.build(s).Build()
			if err != nil {
				t.Fatalf("Failed to build: %v", err)
			}
			if got := db.Count(t, result); got != sc.rows {
				t.Errorf("rows = %d, want %d\nSQL: %s", got, sc.rows, result.SQL)
			}
		})
	}
}

func TestSQLiteIntegration_ReusedBuilder(t *testing.T) {
	db := NewSQLiteDB(t)
	defer db.Close(t)
	setupSQLiteSchema(t, db)

	s := newShop(t)
	b := entsql.New(s.customer, entsql.WithBoundParams())

	for _, age := range []int{18, 30, 50} {
		b.Clear().Select().Text("COUNT(*)").From().Where().Expr(entsql.Ge(s.customer.Col("Age"), age))

		result, err := b.Build()
		if err != nil {
			t.Fatalf("Failed to build: %v", err)
		}

		var count int
		if err := db.QueryRow(t, result.SQL, sqliteArgs(result.Args)...).Scan(&count); err != nil {
			t.Fatalf("Failed to scan: %v\nSQL: %s", err, result.SQL)
		}

		want := map[int]int{18: 4, 30: 2, 50: 0}[age]
		if count != want {
			t.Errorf("age >= %d: count = %d, want %d", age, count, want)
		}
	}
}

func TestSQLiteIntegration_OrderBy(t *testing.T) {
	db := NewSQLiteDB(t)
	defer db.Close(t)
	setupSQLiteSchema(t, db)

	s := newShop(t)
	sql, err := entsql.New(s.customer).
		Select().Column(s.customer.Col("Firstname")).From().
		Where().Expr(entsql.Not(entsql.Eq(s.customer.Col("Lastname"), "Smith"))).
		OrderBy().Desc(s.customer.Col("Age")).Asc(s.customer.Col("Firstname")).
		Render()
	if err != nil {
		t.Fatalf("Failed to render: %v", err)
	}

	rows := db.Query(t, sql)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("Failed to scan: %v", err)
		}
		names = append(names, name)
	}

	expected := []string{"John", "Jack", "Jill"}
	if fmt.Sprint(names) != fmt.Sprint(expected) {
		t.Errorf("names = %v, want %v", names, expected)
	}
}
