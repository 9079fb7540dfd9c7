package entsql_test

import (
	"github.com/zoobzio/entsql"
	entsqltest "github.com/zoobzio/entsql/testing"
)

var (
	schema   = mustSchema()
	customer = schema.Shape("Customer")
	group    = schema.Shape("CustomerGroup")
	order    = schema.Shape("Order")
	line     = schema.Shape("OrderLine")
	product  = schema.Shape("Product")
)

func mustSchema() *entsql.Schema {
	s, err := entsql.NewSchema(entsqltest.TestProject())
	if err != nil {
		panic(err)
	}
	return s
}

// aliased returns a builder over Customer with the usual aliases registered.
func aliased() *entsql.Builder {
	return entsql.New(customer).
		Alias(customer, "c").
		Alias(group, "cg").
		Alias(order, "o").
		Alias(line, "ol")
}

var (
	c  = customer.As("c")
	cg = group.As("cg")
	o  = order.As("o")
	ol = line.As("ol")
)
