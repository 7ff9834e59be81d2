package catalogfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"markethub/pkg/catalogfile"
)

const sampleCatalog = `
products:
  - id: 1
    name: "Беспроводные наушники"
    price: 4990
    category: "Электроника"
    image: "/placeholder.svg"
    rating: 4.8
    reviews: 234
    seller: "TechStore"
  - id: 2
    name: "Умные часы"
    price: 8990
    category: "Электроника"
    image: "/placeholder.svg"
    rating: 4.6
    reviews: 189
    seller: "GadgetPro"
`

func TestParse(t *testing.T) {
	products, err := catalogfile.Parse([]byte(sampleCatalog))
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "Беспроводные наушники", products[0].Name)
	assert.Equal(t, 4990, products[0].Price)
	assert.Equal(t, 4.8, products[0].Rating)
	assert.Equal(t, "GadgetPro", products[1].Seller)
}

func TestParseRejectsDuplicateIDs(t *testing.T) {
	const dup = `
products:
  - id: 1
    name: "A"
  - id: 1
    name: "B"
`
	products, err := catalogfile.Parse([]byte(dup))
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "duplicate product id")
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := catalogfile.Parse([]byte("products: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	products, err := catalogfile.Load(path)
	assert.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = catalogfile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
