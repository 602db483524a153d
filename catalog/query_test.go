package catalog

import (
	"net/url"
	"testing"

	"github.com/Kariqs/amana-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(f float64) *float64 { return &f }

func fixture() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Snake Plant", Price: 450, Category: "Plants", SubCategory: "Indoor Plants"},
		{ID: "2", Name: "Pruning Shears", Price: 300, Category: "Gardening Tools", SubCategory: "Pruning Tools"},
		{ID: "3", Name: "aloe vera", Price: 200, Category: "Plants", SubCategory: "Succulents"},
		{ID: "4", Name: "Ceramic Pot", Price: 650, Category: "Pots and Containers", SubCategory: "Ceramic Pots"},
		{ID: "5", Name: "Compost Mix", Price: 120, Category: "Soil and Fertilizers", SubCategory: "Compost"},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"no filters keeps insertion order", Query{}, []string{"1", "2", "3", "4", "5"}},
		{"search is case insensitive", Query{Search: "PLANT"}, []string{"1"}},
		{"category", Query{Categories: []string{"Plants"}}, []string{"1", "3"}},
		{"multi category", Query{Categories: []string{"Plants", "Gardening Tools"}}, []string{"1", "2", "3"}},
		{"subcategory", Query{SubCategories: []string{"Succulents", "Compost"}}, []string{"3", "5"}},
		{"price bounds inclusive", Query{MinPrice: price(200), MaxPrice: price(450)}, []string{"1", "2", "3"}},
		{"min only", Query{MinPrice: price(500)}, []string{"4"}},
		{"no match", Query{Categories: []string{"Plants"}, MinPrice: price(1000)}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(fixture(), tt.q)))
		})
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	q := Query{Categories: []string{"Plants", "Pots and Containers"}, SubCategories: []string{"Indoor Plants", "Ceramic Pots"}, MaxPrice: price(700)}
	once := Filter(fixture(), q)
	twice := Filter(once, q)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	in := fixture()
	res := Apply(in, Query{Sort: SortHighLow})
	assert.Equal(t, fixture(), in)
	assert.Equal(t, []string{"4", "1", "2", "3", "5"}, ids(res.Products))
}

func TestSortPriceAscThenDescIsReversed(t *testing.T) {
	filtered := Filter(fixture(), Query{})
	asc := append([]models.Product(nil), filtered...)
	SortInPlace(asc, SortLowHigh)
	desc := append([]models.Product(nil), filtered...)
	SortInPlace(desc, SortHighLow)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSortByName(t *testing.T) {
	p := fixture()
	SortInPlace(p, SortNameAsc)
	assert.Equal(t, []string{"3", "4", "5", "2", "1"}, ids(p))
	SortInPlace(p, SortNameDesc)
	assert.Equal(t, []string{"1", "2", "5", "4", "3"}, ids(p))
}

func TestApplyEmptyState(t *testing.T) {
	res := Apply(fixture(), Query{Categories: []string{"Herbs"}, MinPrice: price(1)})
	assert.True(t, res.Empty)
	assert.Equal(t, 0, res.Matched)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.ActiveFilters)
}

func TestParseQuery(t *testing.T) {
	v := url.Values{
		"search":      {"  aloe "},
		"category":    {"Plants", "", "Plants", "Gardening Tools"},
		"subCategory": {"Succulents"},
		"minPrice":    {"100"},
		"maxPrice":    {"abc"},
		"sort":        {"name-desc"},
	}
	q := ParseQuery(v)
	assert.Equal(t, "aloe", q.Search)
	assert.Equal(t, []string{"Plants", "Gardening Tools"}, q.Categories)
	assert.Equal(t, []string{"Succulents"}, q.SubCategories)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 100.0, *q.MinPrice)
	assert.Nil(t, q.MaxPrice)
	assert.Equal(t, SortNameDesc, q.Sort)

	assert.Equal(t, SortRelevant, ParseQuery(url.Values{"sort": {"random"}}).Sort)
}
