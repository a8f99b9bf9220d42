package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nosvasedis/iliosDB-sub004/internal/model"
)

func TestIndexLookups(t *testing.T) {
	matID := uuid.New()
	idx := NewIndex(
		[]model.Product{{SKU: "RN200"}, {SKU: "DA100"}},
		[]model.Material{{ID: matID, Name: "Ruby 4mm"}},
	)

	require.NotNil(t, idx.ProductBySKU("RN200"))
	assert.Nil(t, idx.ProductBySKU("ZZ999"))

	m := idx.MaterialByID(matID)
	require.NotNil(t, m)
	assert.Equal(t, "Ruby 4mm", m.Name)
	assert.Nil(t, idx.MaterialByID(uuid.New()))

	assert.Equal(t, 2, idx.Len())
}

func TestIndexMasterSKUsSorted(t *testing.T) {
	idx := NewIndex([]model.Product{{SKU: "RN200"}, {SKU: "DA100"}, {SKU: "ER300"}}, nil)
	assert.Equal(t, []string{"DA100", "ER300", "RN200"}, idx.MasterSKUs())
}

func TestIndexEmpty(t *testing.T) {
	idx := NewIndex(nil, nil)
	assert.Equal(t, 0, idx.Len())
	assert.Nil(t, idx.ProductBySKU("RN200"))
}
