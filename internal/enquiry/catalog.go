package enquiry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyProductID is returned when a catalog entry has no identifier.
	ErrEmptyProductID = errors.New("enquiry: product id is empty")
	// ErrDuplicateProduct is returned when two catalog entries share an identifier.
	ErrDuplicateProduct = errors.New("enquiry: duplicate product id")
	// ErrCatalogEntry is returned for an entry that is not in "id:Name" form.
	ErrCatalogEntry = errors.New("enquiry: malformed catalog entry")
)

// Product is an item that can be enquired about.
type Product struct {
	ID   string
	Name string
}

// Catalog is the fixed, ordered list of products offered by a session.
type Catalog struct {
	products []Product
}

// NewCatalog validates and copies products into a Catalog. A product without
// a name is displayed by its identifier.
func NewCatalog(products ...Product) (Catalog, error) {
	seen := make(map[string]struct{}, len(products))
	out := make([]Product, 0, len(products))
	for _, p := range products {
		p.ID = strings.TrimSpace(p.ID)
		p.Name = strings.TrimSpace(p.Name)
		if p.ID == "" {
			return Catalog{}, ErrEmptyProductID
		}
		if _, ok := seen[p.ID]; ok {
			return Catalog{}, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	return Catalog{products: out}, nil
}

// ParseCatalog builds a Catalog from "id:Name" entries, as found in config files.
func ParseCatalog(entries []string) (Catalog, error) {
	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		id, name, ok := strings.Cut(e, ":")
		if !ok {
			return Catalog{}, fmt.Errorf("%w: %q", ErrCatalogEntry, e)
		}
		products = append(products, Product{ID: id, Name: name})
	}

	return NewCatalog(products...)
}

// DefaultCatalog returns the product range listed on the website.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(
		Product{ID: "bellow-covers", Name: "Bellow Covers"},
		Product{ID: "telescopic-covers", Name: "Telescopic Covers"},
		Product{ID: "apron-covers", Name: "Apron Covers"},
		Product{ID: "roll-away-covers", Name: "Roll-Away Covers"},
		Product{ID: "rubber-components", Name: "Rubber Components"},
		Product{ID: "rubber-buffers", Name: "Rubber Buffers"},
		Product{ID: "rubber-grommets", Name: "Rubber Grommets"},
		Product{ID: "rubber-seals", Name: "Rubber Seals"},
		Product{ID: "o-rings", Name: "O-Rings"},
		Product{ID: "bushes-grommets", Name: "Bushes & Grommets"},
		Product{ID: "rubber-pads", Name: "Rubber Pads"},
		Product{ID: "foundation-sheets", Name: "Foundation Sheets"},
		Product{ID: "way-wipers", Name: "Way Wipers"},
		Product{ID: "chip-conveyors", Name: "Chip Conveyors"},
		Product{ID: "all-products", Name: "All Products"},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Products returns a copy of the catalog in its defined order.
func (c Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Len returns the number of products.
func (c Catalog) Len() int {
	return len(c.products)
}

// Lookup finds a product by identifier.
func (c Catalog) Lookup(id string) (Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
