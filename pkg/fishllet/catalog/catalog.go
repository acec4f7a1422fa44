// Package catalog holds the storefront's product catalog and the render
// model used to draw it as a list of cards.
//
// A Catalog is constructed once at startup and never mutated afterwards.
// Accessors hand out copies so callers cannot change the configured data.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned when a catalog fails validation.
var (
	ErrEmptyID     = errors.New("catalog: product id is empty")
	ErrEmptyName   = errors.New("catalog: product name is empty")
	ErrDuplicateID = errors.New("catalog: duplicate product id")
)

// Product is a single catalog entry. Price is display text, not an amount.
type Product struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Price string `toml:"price"`
}

// Catalog is an immutable, ordered set of products with unique IDs.
type Catalog struct {
	products []Product
	index    map[string]int
}

// New validates products and returns a catalog holding a private copy of them.
func New(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		index:    make(map[string]int, len(products)),
	}

	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("product %d: %w", i, ErrEmptyID)
		}
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrEmptyName)
		}
		if _, exists := c.index[p.ID]; exists {
			return nil, fmt.Errorf("product %q: %w", p.ID, ErrDuplicateID)
		}
		c.index[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}

	return c, nil
}

// Products returns the catalog's products in configured order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Lookup returns the product with the given ID.
func (c *Catalog) Lookup(id string) (Product, bool) {
	i, ok := c.index[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}
