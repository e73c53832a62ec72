package enquiry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

var (
	// ErrNotAvailable is returned when moving a product that is not in the available list.
	ErrNotAvailable = errors.New("enquiry: product is not available")
	// ErrNotSelected is returned when moving a product that is not in the selected list.
	ErrNotSelected = errors.New("enquiry: product is not selected")
	// ErrUnknownProduct is returned for an identifier outside the catalog.
	ErrUnknownProduct = errors.New("enquiry: unknown product")
)

type entry struct {
	product  Product
	selected bool
	seq      uint64
}

// Selector splits a catalog into an available and a selected list.
//
// Each catalog product is stored once with a selected flag, so the two lists
// are always disjoint and together cover the catalog. A move stamps the
// product with a new sequence number, which puts it at the end of its new list.
type Selector struct {
	catalog Catalog
	entries []entry
	index   map[string]int
	next    uint64
}

// NewSelector returns a selector with every catalog product available.
func NewSelector(c Catalog) *Selector {
	s := &Selector{
		catalog: c,
		entries: make([]entry, c.Len()),
		index:   make(map[string]int, c.Len()),
	}
	for i, p := range c.products {
		s.index[p.ID] = i
	}
	s.Reset()

	return s
}

// Reset makes every product available again, in catalog order.
func (s *Selector) Reset() {
	for i, p := range s.catalog.products {
		s.entries[i] = entry{product: p, seq: uint64(i)}
	}
	s.next = uint64(len(s.entries))
}

// Catalog returns the catalog the selector was built from.
func (s *Selector) Catalog() Catalog {
	return s.catalog
}

// Available returns the products not yet selected, oldest arrival first.
func (s *Selector) Available() []Product {
	return s.view(false)
}

// Selected returns the selected products in the order they were selected.
func (s *Selector) Selected() []Product {
	return s.view(true)
}

func (s *Selector) view(selected bool) []Product {
	es := lo.Filter(s.entries, func(e entry, _ int) bool { return e.selected == selected })
	slices.SortFunc(es, func(a, b entry) int { return cmp.Compare(a.seq, b.seq) })

	return lo.Map(es, func(e entry, _ int) Product { return e.product })
}

// SelectedIDs returns the identifiers of the selected products.
func (s *Selector) SelectedIDs() []string {
	return lo.Map(s.Selected(), func(p Product, _ int) string { return p.ID })
}

// SelectedNames returns the display names of the selected products.
func (s *Selector) SelectedNames() []string {
	return lo.Map(s.Selected(), func(p Product, _ int) string { return p.Name })
}

// MoveToSelected appends items to the selected list in argument order.
// If any item is not currently available nothing is moved.
func (s *Selector) MoveToSelected(items ...Product) error {
	return s.move(true, items)
}

// MoveToAvailable appends items to the available list in argument order.
// If any item is not currently selected nothing is moved.
func (s *Selector) MoveToAvailable(items ...Product) error {
	return s.move(false, items)
}

// MoveAllToSelected selects every available product.
func (s *Selector) MoveAllToSelected() {
	_ = s.move(true, s.Available())
}

// MoveAllToAvailable deselects every selected product.
func (s *Selector) MoveAllToAvailable() {
	_ = s.move(false, s.Selected())
}

// MoveFirstToSelected selects the first available product, if any.
func (s *Selector) MoveFirstToSelected() {
	if avail := s.Available(); len(avail) > 0 {
		_ = s.move(true, avail[:1])
	}
}

// MoveFirstToAvailable deselects the first selected product, if any.
func (s *Selector) MoveFirstToAvailable() {
	if sel := s.Selected(); len(sel) > 0 {
		_ = s.move(false, sel[:1])
	}
}

// Toggle moves the product to the other list.
func (s *Selector) Toggle(id string) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}

	return s.move(!s.entries[i].selected, []Product{s.entries[i].product})
}

// CanMoveToSelected reports whether the available list has anything to move.
func (s *Selector) CanMoveToSelected() bool {
	return lo.ContainsBy(s.entries, func(e entry) bool { return !e.selected })
}

// CanMoveToAvailable reports whether the selected list has anything to move.
func (s *Selector) CanMoveToAvailable() bool {
	return lo.ContainsBy(s.entries, func(e entry) bool { return e.selected })
}

func (s *Selector) move(toSelected bool, items []Product) error {
	ids := lo.Uniq(lo.Map(items, func(p Product, _ int) string { return p.ID }))

	for _, id := range ids {
		i, ok := s.index[id]
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownProduct, id)
		}
		if s.entries[i].selected == toSelected {
			if toSelected {
				return fmt.Errorf("%w: %s", ErrNotAvailable, id)
			}
			return fmt.Errorf("%w: %s", ErrNotSelected, id)
		}
	}

	for _, id := range ids {
		e := &s.entries[s.index[id]]
		e.selected = toSelected
		e.seq = s.next
		s.next++
	}

	return nil
}
