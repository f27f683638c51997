package sdkmodel

import (
	"maps"
	"slices"
)

// Catalog indexes the shapes of one service by type name so tools can create
// builders without static knowledge of the generated types.
type Catalog struct {
	service  string
	builders map[string]func() AnyBuilder
}

// NewCatalog registers builder constructors under the type name of the
// schema each one reports.
func NewCatalog(service string, builders ...func() AnyBuilder) (*Catalog, error) {
	c := &Catalog{service: service, builders: make(map[string]func() AnyBuilder, len(builders))}
	var iss Issues
	for _, nb := range builders {
		name := nb().Schema().TypeName()
		if _, dup := c.builders[name]; dup {
			iss = AppendIssues(iss, NewIssue("/"+name, CodeDuplicateField, service, nil))
			continue
		}
		c.builders[name] = nb
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return c, nil
}

// MustCatalog is NewCatalog that panics on error.
func MustCatalog(service string, builders ...func() AnyBuilder) *Catalog {
	c, err := NewCatalog(service, builders...)
	if err != nil {
		panic(service + ": " + err.Error())
	}
	return c
}

func (c *Catalog) Service() string { return c.service }

// Shapes returns the registered type names in ascending order.
func (c *Catalog) Shapes() []string { return slices.Sorted(maps.Keys(c.builders)) }

// NewBuilder returns a fresh builder for shape.
func (c *Catalog) NewBuilder(shape string) (AnyBuilder, error) {
	nb, ok := c.builders[shape]
	if !ok {
		return nil, Issues{NewIssue("/"+shape, CodeUnknownShape, c.service, nil)}
	}
	return nb(), nil
}

// Schema returns the descriptor registry of shape.
func (c *Catalog) Schema(shape string) (SchemaInfo, error) {
	b, err := c.NewBuilder(shape)
	if err != nil {
		return nil, err
	}
	return b.Schema(), nil
}
