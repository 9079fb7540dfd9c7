package entsql

import "github.com/zoobzio/entsql/internal/render"

// Alias is a registered shape alias.
type Alias struct {
	Shape string
	Alias string
}

// AliasRegistry maps shape names to aliases. The first registration of a
// shape wins; later registrations of the same shape are ignored.
type AliasRegistry struct {
	aliases map[string]string
	order   []string
}

// NewAliasRegistry creates an empty registry.
func NewAliasRegistry() *AliasRegistry {
	return &AliasRegistry{aliases: make(map[string]string)}
}

// Register records alias for shape. It reports whether the alias was
// recorded, which is false when the shape already had one.
func (r *AliasRegistry) Register(shape Shape, alias string) (bool, error) {
	if alias == "" {
		return false, render.NewConfigurationError("alias", "alias for "+shape.Name()+" may not be empty")
	}
	if shape.Name() == "" {
		return false, render.NewConfigurationError("alias", "shape name may not be empty")
	}
	if _, exists := r.aliases[shape.Name()]; exists {
		return false, nil
	}
	r.aliases[shape.Name()] = alias
	r.order = append(r.order, shape.Name())
	return true, nil
}

// Lookup returns the alias registered for shape.
func (r *AliasRegistry) Lookup(shape Shape) (string, bool) {
	return r.lookup(shape.Name())
}

func (r *AliasRegistry) lookup(name string) (string, bool) {
	alias, ok := r.aliases[name]
	return alias, ok
}

// Contains reports whether alias is registered for any shape.
func (r *AliasRegistry) Contains(alias string) bool {
	for _, a := range r.aliases {
		if a == alias {
			return true
		}
	}
	return false
}

// Aliases returns the registrations in registration order.
func (r *AliasRegistry) Aliases() []Alias {
	out := make([]Alias, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Alias{Shape: name, Alias: r.aliases[name]})
	}
	return out
}

// Len returns the number of registered shapes.
func (r *AliasRegistry) Len() int {
	return len(r.order)
}
