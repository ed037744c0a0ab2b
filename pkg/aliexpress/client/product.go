package client

// Every remote method wraps its payload in a method-specific top-level key.
// The structs below pin those shapes down so nothing above this package
// has to touch raw payload maps.

type productDetailResponse struct {
	Wrapper struct {
		Result struct {
			Products []RawProduct `json:"products"`
		} `json:"result"`
	} `json:"aliexpress_affiliate_productdetail_get_response"`
}

type skuDetailResponse struct {
	Wrapper struct {
		Result *RawSKUDetail `json:"result"`
	} `json:"aliexpress_affiliate_product_sku_detail_get_response"`
}

// RawProduct is the upstream product entry, shared by the keyed detail
// method and the public query method
type RawProduct struct {
	ProductID      int64        `json:"product_id"`
	Title          string       `json:"product_title"`
	MainImageURL   string       `json:"product_main_image_url"`
	DetailURL      string       `json:"product_detail_url"`
	OriginalPrice  string       `json:"original_price"`
	SalePrice      string       `json:"sale_price"`
	EvaluateRate   string       `json:"evaluate_rate"`
	LatestVolume   int          `json:"lastest_volume"`
	FirstLevelCat  string       `json:"first_level_category_name"`
	SecondLevelCat string       `json:"second_level_category_name"`
	ShopID         int64        `json:"shop_id"`
	ShopURL        string       `json:"shop_url"`
	BaseInfo       *RawBaseInfo `json:"ae_item_base_info_dto"`
	SKUInfos       []RawSKUInfo `json:"ae_item_sku_info_dtos"`
}

// RawBaseInfo carries the detail-only rating fields. The detail method
// reports the rating as a direct 0-5 value, unlike the percentage string
// of evaluate_rate.
type RawBaseInfo struct {
	Subject         string `json:"subject"`
	AvgRating       string `json:"avg_evaluation_rating"`
	EvaluationCount string `json:"evaluation_count"`
}

// RawSKUInfo is one purchasable variant with its property entries
type RawSKUInfo struct {
	SKUID      int64            `json:"sku_id"`
	SKUPrice   string           `json:"sku_price"`
	SalePrice  string           `json:"offer_sale_price"`
	Properties []RawSKUProperty `json:"ae_sku_property_dtos"`
}

// RawSKUProperty is a single name/value entry, e.g. Color / Black
type RawSKUProperty struct {
	Name            string `json:"sku_property_name"`
	Value           string `json:"sku_property_value"`
	DefinitionValue string `json:"property_value_definition_name"`
}

// RawSKUDetail is the payload of the SKU-level detail method
type RawSKUDetail struct {
	SKUID      int64            `json:"sku_id"`
	SalePrice  string           `json:"sku_sale_price"`
	Stock      int              `json:"sku_available_stock"`
	Properties []RawSKUProperty `json:"ae_sku_property_dtos"`
}
