// Package benchmarks provides performance benchmarks for entsql.
package benchmarks

import (
	"testing"

	"github.com/zoobzio/entsql"
	entsqltest "github.com/zoobzio/entsql/testing"
)

type shapes struct {
	customer entsql.Shape
	group    entsql.Shape
	order    entsql.Shape
	line     entsql.Shape
	product  entsql.Shape
}

func createBenchmarkShapes(b *testing.B) shapes {
	b.Helper()

	schema := entsqltest.TestSchema(b)
	return shapes{
		customer: schema.Shape("Customer"),
		group:    schema.Shape("CustomerGroup"),
		order:    schema.Shape("Order"),
		line:     schema.Shape("OrderLine"),
		product:  schema.Shape("Product"),
	}
}

// BenchmarkSimpleSelect measures SELECT * rendering.
func BenchmarkSimpleSelect(b *testing.B) {
	s := createBenchmarkShapes(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).Select().All().From().Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithColumns measures SELECT with explicit aliased columns.
func BenchmarkSelectWithColumns(b *testing.B) {
	s := createBenchmarkShapes(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).
			Select().
			Column(s.customer.Col("Id")).
			Column(s.customer.Col("Firstname"), "First").
			Column(s.customer.Col("Lastname"), "Last").
			Column(s.customer.Col("Age")).
			From().
			Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithWhere measures a single comparison predicate.
func BenchmarkSelectWithWhere(b *testing.B) {
	s := createBenchmarkShapes(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).
			Select().All().
			From().
			Where().Expr(entsql.Gt(s.customer.Col("Age"), 20)).
			Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithNestedConditions measures deeper expression trees.
func BenchmarkSelectWithNestedConditions(b *testing.B) {
	s := createBenchmarkShapes(b)
	cond := entsql.And(
		entsql.Eq(s.customer.Col("Lastname"), "Doe"),
		entsql.Or(
			entsql.Eq(s.customer.Col("Firstname"), "John"),
			entsql.Eq(s.customer.Col("Firstname"), "Jill"),
		),
		entsql.Not(entsql.Lt(s.customer.Col("Age"), 18)),
	)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).Select().All().From().Where().Expr(cond).Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSelectWithJoins measures a three-way join with registered aliases.
func BenchmarkSelectWithJoins(b *testing.B) {
	s := createBenchmarkShapes(b)
	c, o, ol, p := s.customer.As("c"), s.order.As("o"), s.line.As("ol"), s.product.As("p")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).
			Alias(s.customer, "c").
			Alias(s.order, "o").
			Alias(s.line, "ol").
			Alias(s.product, "p").
			Select().BoundColumns(c.Col("Lastname"), p.Col("Name")).
			From().
			Join(s.order, entsql.InnerJoin).On(entsql.Eq(c.Col("Id"), o.Col("CustomerId"))).
			Join(s.line, entsql.InnerJoin).On(entsql.Eq(o.Col("Id"), ol.Col("OrderId"))).
			Join(s.product, entsql.LeftOuterJoin).On(entsql.Eq(ol.Col("ProductId"), p.Col("Id"))).
			Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGroupByHaving measures the full clause pipeline.
func BenchmarkGroupByHaving(b *testing.B) {
	s := createBenchmarkShapes(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer).
			Select().Column(s.customer.Col("Lastname")).Format("Avg(%s) AS [AverageAge]", s.customer.Col("Age")).
			From().
			GroupBy().Column(s.customer.Col("Lastname")).
			Having().Format("Avg(%s) > %s", s.customer.Col("Age"), entsql.Const(20)).
			OrderBy().Asc(s.customer.Col("Lastname")).
			Render()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBoundParams measures placeholder numbering in bind mode.
func BenchmarkBoundParams(b *testing.B) {
	s := createBenchmarkShapes(b)
	minAge := 20
	lastname := "Doe"

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := entsql.New(s.customer, entsql.WithBoundParams()).
			Select().All().
			From().
			Where().Expr(entsql.And(
			entsql.Ge(s.customer.Col("Age"), entsql.Ref(&minAge)),
			entsql.Eq(s.customer.Col("Lastname"), entsql.Ref(&lastname)),
		)).
			Build()
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkClearReuse measures rebuilding on one builder.
func BenchmarkClearReuse(b *testing.B) {
	s := createBenchmarkShapes(b)
	builder := entsql.New(s.customer)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		builder.Clear().Select().All().From().Where().Expr(entsql.Eq(s.customer.Col("Id"), i))
		if _, err := builder.Render(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExpressionCreation measures building an expression tree.
func BenchmarkExpressionCreation(b *testing.B) {
	s := createBenchmarkShapes(b)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = entsql.And(
			entsql.Gt(s.customer.Col("Age"), 20),
			entsql.Eq(s.customer.Col("Lastname"), "Doe"),
		)
	}
}

// BenchmarkShapeOf measures reflecting a struct into a shape.
func BenchmarkShapeOf(b *testing.B) {
	type Customer struct {
		ID        int    `db:"Id"`
		Firstname string `db:"Firstname"`
		Lastname  string `db:"Lastname"`
		Age       int
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = entsql.ShapeOf[Customer]()
	}
}
