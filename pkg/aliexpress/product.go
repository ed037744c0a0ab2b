package aliexpress

import (
	"strconv"
	"strings"

	"sahimarket.com/aliexbot/pkg/aliexpress/client"
	"sahimarket.com/aliexbot/pkg/collection"
)

// RatingScale marks which raw representation a rating value came from.
// The public query reports a percentage of 100, the keyed detail method a
// direct 0-5 value; the formatter needs to know which one it received.
type RatingScale int

const (
	ScaleNone RatingScale = iota
	ScalePercent
	ScaleFive
)

// Product is the normalized record every upstream payload variant is
// converted into before formatting. It is never mutated after construction
// except by MergeSKUDetail.
type Product struct {
	ID                string
	Title             string
	ImageURL          string
	DetailURL         string
	OriginalPrice     *float64
	SalePrice         *float64
	Rating            *float64
	RatingScale       RatingScale
	ReviewCount       *int
	CategoryPrimary   string
	CategorySecondary string
	ShopID            string
	ShopURL           string

	// VariantGroups maps a property name to its distinct values
	VariantGroups map[string][]string

	// Exact is false when the public-mode fallback settled for the first
	// search result instead of an exact id match
	Exact bool

	SKUDetail *SKUSelection
}

// SKUSelection is the merged SKU-level detail for the variant the link
// pointed at
type SKUSelection struct {
	SKUID      string
	SalePrice  *float64
	Stock      int
	Properties map[string]string
}

// FromRaw maps an upstream product entry into the normalized record
func FromRaw(raw *client.RawProduct) *Product {
	p := &Product{
		ID:                strconv.FormatInt(raw.ProductID, 10),
		Title:             raw.Title,
		ImageURL:          raw.MainImageURL,
		DetailURL:         raw.DetailURL,
		OriginalPrice:     parsePrice(raw.OriginalPrice),
		SalePrice:         parsePrice(raw.SalePrice),
		CategoryPrimary:   raw.FirstLevelCat,
		CategorySecondary: raw.SecondLevelCat,
		ShopURL:           raw.ShopURL,
		Exact:             true,
	}

	if raw.ShopID != 0 {
		p.ShopID = strconv.FormatInt(raw.ShopID, 10)
	}
	if raw.BaseInfo != nil && p.Title == "" {
		p.Title = raw.BaseInfo.Subject
	}

	p.Rating, p.RatingScale = parseRating(raw)
	p.ReviewCount = parseReviewCount(raw)
	p.VariantGroups = groupVariants(raw.SKUInfos)

	return p
}

// MergeSKUDetail attaches SKU-level detail to the record. It is the one
// permitted post-construction merge.
func (p *Product) MergeSKUDetail(raw *client.RawSKUDetail) {
	if raw == nil {
		return
	}

	sel := &SKUSelection{
		SKUID:      strconv.FormatInt(raw.SKUID, 10),
		SalePrice:  parsePrice(raw.SalePrice),
		Stock:      raw.Stock,
		Properties: make(map[string]string, len(raw.Properties)),
	}
	for i := range raw.Properties {
		sel.Properties[raw.Properties[i].Name] = propertyValue(raw.Properties[i])
	}

	p.SKUDetail = sel
}

// BasePrice returns the price the breakdown starts from: the sale price
// when present, otherwise the original price
func (p *Product) BasePrice() (float64, bool) {
	if p.SalePrice != nil {
		return *p.SalePrice, true
	}
	if p.OriginalPrice != nil {
		return *p.OriginalPrice, true
	}
	return 0, false
}

func groupVariants(infos []client.RawSKUInfo) map[string][]string {
	if len(infos) == 0 {
		return nil
	}

	grouped := make(map[string][]string)
	for i := range infos {
		for j := range infos[i].Properties {
			name := infos[i].Properties[j].Name
			if name == "" {
				continue
			}
			grouped[name] = append(grouped[name], propertyValue(infos[i].Properties[j]))
		}
	}

	for name := range grouped {
		grouped[name] = collection.UniqueNames(grouped[name])
	}

	return grouped
}

func propertyValue(prop client.RawSKUProperty) string {
	if prop.DefinitionValue != "" {
		return prop.DefinitionValue
	}
	return prop.Value
}

func parseRating(raw *client.RawProduct) (*float64, RatingScale) {
	if raw.BaseInfo != nil && raw.BaseInfo.AvgRating != "" {
		if v, err := strconv.ParseFloat(raw.BaseInfo.AvgRating, 64); err == nil {
			return &v, ScaleFive
		}
	}
	if raw.EvaluateRate != "" {
		trimmed := strings.TrimSuffix(raw.EvaluateRate, "%")
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return &v, ScalePercent
		}
	}
	return nil, ScaleNone
}

func parseReviewCount(raw *client.RawProduct) *int {
	if raw.BaseInfo == nil || raw.BaseInfo.EvaluationCount == "" {
		return nil
	}
	n, err := strconv.Atoi(raw.BaseInfo.EvaluationCount)
	if err != nil {
		return nil
	}
	return &n
}

// parsePrice reads the upstream decimal strings, tolerating a currency
// prefix and thousands separators
func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, "US $")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
