package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkUpsertAddsAndUpdatesByNormalizedName(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "StructuraFlow 200", 450)

	result, err := env.products.BulkUpsert(ctx, []ImportRow{
		// Matches the existing product despite case and whitespace noise.
		{Name: "  structuraflow 200 ", Category: "Admixture", BasePrice: 500},
		{Name: "StructuraCure 50", BasePrice: 120},
		{Name: "   "},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Skipped)

	listed, err := env.products.ListProducts(ctx, listAllProducts())
	require.NoError(t, err)
	require.Len(t, listed.Items, 2)

	byName := map[string]float64{}
	for _, p := range listed.Items {
		byName[p.Name] = p.BasePrice
	}
	assert.Equal(t, 500.0, byName["StructuraFlow 200"])
	assert.Equal(t, 120.0, byName["StructuraCure 50"])
}

func TestBulkUpsertAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.products.BulkUpsert(ctx, []ImportRow{{Name: "Bare Product", BasePrice: 10}})
	require.NoError(t, err)

	listed, err := env.products.ListProducts(ctx, listAllProducts())
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)

	product := listed.Items[0]
	assert.Equal(t, "General", product.Category)
	assert.Equal(t, "Units", product.UOM)
	assert.Equal(t, "Standard", product.Packaging)
}

func TestBulkUpsertKeepsExistingFieldsWhenRowIsBlank(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.seedProduct(t, "StructuraFlow 200", 450)

	_, err := env.products.BulkUpsert(ctx, []ImportRow{{Name: "StructuraFlow 200", BasePrice: 475}})
	require.NoError(t, err)

	listed, err := env.products.ListProducts(ctx, listAllProducts())
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)

	product := listed.Items[0]
	assert.Equal(t, 475.0, product.BasePrice)
	assert.Equal(t, "Admixture", product.Category)
	assert.Equal(t, "Litres", product.UOM)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.products.CreateProduct(context.Background(), &ProductInput{
		Name:      "Bad Product",
		BasePrice: -1,
	})
	assert.Error(t, err)
}
