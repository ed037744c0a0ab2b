package client

type shippingResponse struct {
	Wrapper struct {
		Result *RawShipping `json:"result"`
	} `json:"aliexpress_affiliate_product_shipping_get_response"`
}

// RawShipping is the payload of the shipping method for one product and
// destination
type RawShipping struct {
	EstimatedDelivery string `json:"estimated_delivery"`
	MinDeliveryDays   int    `json:"min_delivery_days"`
	MaxDeliveryDays   int    `json:"max_delivery_days"`
	ShippingMethod    string `json:"shipping_method"`
	ShippingCost      string `json:"shipping_cost"`
	Destination       string `json:"destination"`
}
