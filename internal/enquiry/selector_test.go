package enquiry

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()

	c, err := NewCatalog(
		Product{ID: "a", Name: "Alpha"},
		Product{ID: "b", Name: "Bravo"},
		Product{ID: "c", Name: "Charlie"},
		Product{ID: "d", Name: "Delta"},
	)
	require.NoError(t, err)
	return c
}

func ids(ps []Product) []string {
	return lo.Map(ps, func(p Product, _ int) string { return p.ID })
}

func assertPartition(t *testing.T, s *Selector) {
	t.Helper()

	avail, sel := ids(s.Available()), ids(s.Selected())
	assert.Empty(t, lo.Intersect(avail, sel), "lists overlap")
	assert.ElementsMatch(t, ids(s.Catalog().Products()), append(avail, sel...), "lists do not cover the catalog")
}

func TestSelectorInitialState(t *testing.T) {
	s := NewSelector(testCatalog(t))

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Available()))
	assert.Empty(t, s.Selected())
	assert.Empty(t, s.SelectedIDs())
	assert.True(t, s.CanMoveToSelected())
	assert.False(t, s.CanMoveToAvailable())
}

func TestSelectorMoveAppendsInArrivalOrder(t *testing.T) {
	c := testCatalog(t)
	s := NewSelector(c)
	pc, _ := c.Lookup("c")
	pa, _ := c.Lookup("a")

	require.NoError(t, s.MoveToSelected(pc, pa))
	assert.Equal(t, []string{"c", "a"}, s.SelectedIDs())
	assert.Equal(t, []string{"Charlie", "Alpha"}, s.SelectedNames())
	assert.Equal(t, []string{"b", "d"}, ids(s.Available()))

	require.NoError(t, s.MoveToAvailable(pc))
	assert.Equal(t, []string{"b", "d", "c"}, ids(s.Available()))
	assert.Equal(t, []string{"a"}, s.SelectedIDs())
	assertPartition(t, s)
}

func TestSelectorMoveIsAtomic(t *testing.T) {
	c := testCatalog(t)
	s := NewSelector(c)
	pa, _ := c.Lookup("a")
	pb, _ := c.Lookup("b")
	require.NoError(t, s.MoveToSelected(pa))

	err := s.MoveToSelected(pb, pa)
	assert.ErrorIs(t, err, ErrNotAvailable)
	assert.Equal(t, []string{"a"}, s.SelectedIDs())
	assert.Equal(t, []string{"b", "c", "d"}, ids(s.Available()))

	err = s.MoveToAvailable(pa, pb)
	assert.ErrorIs(t, err, ErrNotSelected)
	assert.Equal(t, []string{"a"}, s.SelectedIDs())

	err = s.MoveToSelected(pb, Product{ID: "zzz"})
	assert.ErrorIs(t, err, ErrUnknownProduct)
	assert.Equal(t, []string{"a"}, s.SelectedIDs())
}

func TestSelectorCollapsesDuplicates(t *testing.T) {
	c := testCatalog(t)
	s := NewSelector(c)
	pb, _ := c.Lookup("b")

	require.NoError(t, s.MoveToSelected(pb, pb, pb))
	assert.Equal(t, []string{"b"}, s.SelectedIDs())
	assertPartition(t, s)
}

func TestSelectorEmptyMovesAreNoops(t *testing.T) {
	s := NewSelector(testCatalog(t))

	require.NoError(t, s.MoveToSelected())
	require.NoError(t, s.MoveToAvailable())
	s.MoveAllToAvailable()
	s.MoveFirstToAvailable()
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Available()))

	s.MoveAllToSelected()
	assert.False(t, s.CanMoveToSelected())
	s.MoveAllToSelected()
	s.MoveFirstToSelected()
	assert.Equal(t, []string{"a", "b", "c", "d"}, s.SelectedIDs())
	assert.Empty(t, s.Available())
}

func TestSelectorMoveAllRoundTrip(t *testing.T) {
	s := NewSelector(testCatalog(t))
	require.NoError(t, s.Toggle("c"))

	s.MoveAllToSelected()
	assert.Equal(t, []string{"c", "a", "b", "d"}, s.SelectedIDs())
	assert.True(t, s.CanMoveToAvailable())

	s.MoveAllToAvailable()
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, ids(s.Available()))
	assert.Empty(t, s.Selected())
}

func TestSelectorMoveFirst(t *testing.T) {
	s := NewSelector(testCatalog(t))

	s.MoveFirstToSelected()
	s.MoveFirstToSelected()
	assert.Equal(t, []string{"a", "b"}, s.SelectedIDs())

	s.MoveFirstToAvailable()
	assert.Equal(t, []string{"b"}, s.SelectedIDs())
	assert.Equal(t, []string{"c", "d", "a"}, ids(s.Available()))
}

func TestSelectorToggle(t *testing.T) {
	s := NewSelector(testCatalog(t))

	require.NoError(t, s.Toggle("b"))
	assert.Equal(t, []string{"b"}, s.SelectedIDs())
	require.NoError(t, s.Toggle("b"))
	assert.Empty(t, s.SelectedIDs())
	assert.ErrorIs(t, s.Toggle("nope"), ErrUnknownProduct)
}

func TestSelectorReset(t *testing.T) {
	s := NewSelector(testCatalog(t))
	s.MoveAllToSelected()
	require.NoError(t, s.Toggle("a"))

	s.Reset()
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(s.Available()))
	assert.Empty(t, s.Selected())
}

func TestSelectorRoundTripRestoresMembership(t *testing.T) {
	c := testCatalog(t)
	s := NewSelector(c)
	pb, _ := c.Lookup("b")
	pd, _ := c.Lookup("d")
	require.NoError(t, s.Toggle("a"))

	require.NoError(t, s.MoveToSelected(pb, pd))
	require.NoError(t, s.MoveToAvailable(pb, pd))

	assert.ElementsMatch(t, []string{"b", "c", "d"}, ids(s.Available()))
	assert.Equal(t, []string{"a"}, s.SelectedIDs())
	assertPartition(t, s)
}

func TestSelectorPartitionHoldsUnderRandomMoves(t *testing.T) {
	s := NewSelector(DefaultCatalog())
	all := DefaultCatalog().Products()
	rng := rand.New(rand.NewSource(6841))

	for i := 0; i < 500; i++ {
		switch rng.Intn(7) {
		case 0:
			_ = s.MoveToSelected(lo.Samples(all, rng.Intn(4))...)
		case 1:
			_ = s.MoveToAvailable(lo.Samples(all, rng.Intn(4))...)
		case 2:
			_ = s.Toggle(all[rng.Intn(len(all))].ID)
		case 3:
			s.MoveFirstToSelected()
		case 4:
			s.MoveFirstToAvailable()
		case 5:
			if rng.Intn(5) == 0 {
				s.MoveAllToSelected()
			}
		case 6:
			if rng.Intn(5) == 0 {
				s.MoveAllToAvailable()
			}
		}

		assertPartition(t, s)
		assert.Equal(t, len(s.Available()) > 0, s.CanMoveToSelected())
		assert.Equal(t, len(s.Selected()) > 0, s.CanMoveToAvailable())
	}
}
