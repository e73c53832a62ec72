package enquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(Product{ID: " a ", Name: " Alpha "}, Product{ID: "b"})
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "b"}}, c.Products())
	assert.Equal(t, 2, c.Len())

	p, ok := c.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "Alpha", p.Name)
	_, ok = c.Lookup("zzz")
	assert.False(t, ok)

	_, err = NewCatalog(Product{ID: "a"}, Product{ID: "a"})
	assert.ErrorIs(t, err, ErrDuplicateProduct)

	_, err = NewCatalog(Product{ID: " ", Name: "Blank"})
	assert.ErrorIs(t, err, ErrEmptyProductID)
}

func TestCatalogProductsIsACopy(t *testing.T) {
	c := DefaultCatalog()
	ps := c.Products()
	ps[0].Name = "changed"
	assert.Equal(t, "Bellow Covers", c.Products()[0].Name)
}

func TestParseCatalog(t *testing.T) {
	c, err := ParseCatalog([]string{"o-rings:O-Rings", "way-wipers: Way Wipers"})
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "o-rings", Name: "O-Rings"}, {ID: "way-wipers", Name: "Way Wipers"}}, c.Products())

	_, err = ParseCatalog([]string{"no-separator"})
	assert.ErrorIs(t, err, ErrCatalogEntry)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, 15, c.Len())

	p, ok := c.Lookup("bushes-grommets")
	require.True(t, ok)
	assert.Equal(t, "Bushes & Grommets", p.Name)
}
