package aliexpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sahimarket.com/aliexbot/pkg/aliexpress/client"
)

func rawTestProduct() *client.RawProduct {
	return &client.RawProduct{
		ProductID:      1005006123456789,
		Title:          "Wireless Earbuds TWS",
		MainImageURL:   "https://ae01.alicdn.com/kf/abc.jpg",
		DetailURL:      "https://www.aliexpress.com/item/1005006123456789.html",
		OriginalPrice:  "25.99",
		SalePrice:      "12.49",
		EvaluateRate:   "94.6%",
		FirstLevelCat:  "Consumer Electronics",
		SecondLevelCat: "Earphones & Headphones",
		ShopID:         912345,
		ShopURL:        "https://www.aliexpress.com/store/912345",
		SKUInfos: []client.RawSKUInfo{
			{
				SKUID: 1,
				Properties: []client.RawSKUProperty{
					{Name: "Color", Value: "Black"},
					{Name: "Plug Type", Value: "USB-C"},
				},
			},
			{
				SKUID: 2,
				Properties: []client.RawSKUProperty{
					{Name: "Color", Value: "White"},
					{Name: "Plug Type", Value: "USB-C"},
				},
			},
			{
				SKUID: 3,
				Properties: []client.RawSKUProperty{
					{Name: "Color", Value: "Black"},
				},
			},
		},
	}
}

func TestFromRaw(t *testing.T) {
	p := FromRaw(rawTestProduct())

	assert.Equal(t, "1005006123456789", p.ID)
	assert.Equal(t, "Wireless Earbuds TWS", p.Title)
	require.NotNil(t, p.OriginalPrice)
	require.NotNil(t, p.SalePrice)
	assert.Equal(t, 25.99, *p.OriginalPrice)
	assert.Equal(t, 12.49, *p.SalePrice)
	require.NotNil(t, p.Rating)
	assert.Equal(t, 94.6, *p.Rating)
	assert.Equal(t, ScalePercent, p.RatingScale)
	assert.Equal(t, "912345", p.ShopID)
	assert.True(t, p.Exact)
}

func TestFromRawVariantGroups(t *testing.T) {
	p := FromRaw(rawTestProduct())

	require.Len(t, p.VariantGroups, 2)
	assert.ElementsMatch(t, []string{"Black", "White"}, p.VariantGroups["Color"])
	assert.Equal(t, []string{"USB-C"}, p.VariantGroups["Plug Type"])
}

func TestFromRawDirectRatingScale(t *testing.T) {
	raw := rawTestProduct()
	raw.BaseInfo = &client.RawBaseInfo{
		AvgRating:       "4.7",
		EvaluationCount: "1532",
	}

	p := FromRaw(raw)

	require.NotNil(t, p.Rating)
	assert.Equal(t, 4.7, *p.Rating)
	assert.Equal(t, ScaleFive, p.RatingScale)
	require.NotNil(t, p.ReviewCount)
	assert.Equal(t, 1532, *p.ReviewCount)
}

func TestFromRawMissingFields(t *testing.T) {
	p := FromRaw(&client.RawProduct{ProductID: 12345678})

	assert.Nil(t, p.OriginalPrice)
	assert.Nil(t, p.SalePrice)
	assert.Nil(t, p.Rating)
	assert.Equal(t, ScaleNone, p.RatingScale)
	assert.Nil(t, p.ReviewCount)
	assert.Nil(t, p.VariantGroups)
	assert.Empty(t, p.ShopID)
}

func TestMergeSKUDetail(t *testing.T) {
	p := FromRaw(rawTestProduct())

	p.MergeSKUDetail(&client.RawSKUDetail{
		SKUID:     2,
		SalePrice: "13.20",
		Stock:     117,
		Properties: []client.RawSKUProperty{
			{Name: "Color", Value: "White"},
		},
	})

	require.NotNil(t, p.SKUDetail)
	assert.Equal(t, "2", p.SKUDetail.SKUID)
	require.NotNil(t, p.SKUDetail.SalePrice)
	assert.Equal(t, 13.20, *p.SKUDetail.SalePrice)
	assert.Equal(t, 117, p.SKUDetail.Stock)
	assert.Equal(t, "White", p.SKUDetail.Properties["Color"])
}

func TestParsePrice(t *testing.T) {
	cases := map[string]*float64{
		"12.49":      floatPtr(12.49),
		"US $12.49":  floatPtr(12.49),
		"$1,299.00":  floatPtr(1299.00),
		"":           nil,
		"not-a-cost": nil,
	}
	for in, want := range cases {
		got := parsePrice(in)
		if want == nil {
			assert.Nil(t, got, in)
			continue
		}
		require.NotNil(t, got, in)
		assert.Equal(t, *want, *got, in)
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
