package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the production gateway for the affiliate API
	DefaultBaseURL = "https://api.aliexpress.com/sync"

	requestTimeout = 30 * time.Second

	// detailFields is the fixed field-selection list for the product
	// detail method
	detailFields = "product_id,product_title,product_main_image_url,product_video_url," +
		"ae_item_base_info_dto,ae_item_sku_info_dtos,ae_item_properties," +
		"logistics_info_dto,ae_multimedia_info_dto"
)

// remote method names
const (
	methodProductDetail = "aliexpress.affiliate.productdetail.get"
	methodSKUDetail     = "aliexpress.affiliate.product.sku.detail.get"
	methodShipping      = "aliexpress.affiliate.product.shipping.get"
	methodProductQuery  = "aliexpress.affiliate.product.query"
)

// Connection carries the credentials and the shared transport for all
// calls to the affiliate API. One Connection is reused across requests.
type Connection struct {
	appKey    string
	appSecret string
	session   string
	baseURL   string

	targetCurrency string
	targetLanguage string
	shipToCountry  string

	rawClient *http.Client
}

// NewConnection returns a Connection pointer after validating the credentials.
// An empty session token is allowed and selects the public endpoints.
func NewConnection(appKey, appSecret, session, baseURL, currency, language, country string) (c *Connection, err error) {
	if appKey == "" || appSecret == "" {
		return c, errors.New("Supplied empty app credentials")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Connection{
		appKey:         appKey,
		appSecret:      appSecret,
		session:        session,
		baseURL:        baseURL,
		targetCurrency: currency,
		targetLanguage: language,
		shipToCountry:  country,
		rawClient:      &http.Client{Timeout: requestTimeout},
	}, nil
}

// Authenticated reports whether a session token is configured, which
// selects the keyed product-detail endpoints over the public search.
func (c *Connection) Authenticated() bool {
	return c.session != ""
}

// ShipToCountry returns the configured destination country code
func (c *Connection) ShipToCountry() string {
	return c.shipToCountry
}

// GetProductDetail fetches the first product entry of the keyed detail
// method. A nil product with nil error means the id is unknown upstream.
func (c *Connection) GetProductDetail(productID string) (*RawProduct, error) {
	r := apiRequest{
		connection: c,
		method:     methodProductDetail,
		params: map[string]string{
			"product_ids": productID,
			"fields":      detailFields,
		},
	}

	data, err := r.Send()
	if err != nil {
		return nil, fmt.Errorf("Product detail - %v", err)
	}

	var response productDetailResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("Product detail - unmarshal - %v", err)
	}

	products := response.Wrapper.Result.Products
	if len(products) == 0 {
		return nil, nil
	}

	return &products[0], nil
}

// GetSKUDetail fetches SKU-level detail for one variant of a product
func (c *Connection) GetSKUDetail(productID, skuID string) (*RawSKUDetail, error) {
	r := apiRequest{
		connection: c,
		method:     methodSKUDetail,
		params: map[string]string{
			"product_id": productID,
			"sku_id":     skuID,
		},
	}

	data, err := r.Send()
	if err != nil {
		return nil, fmt.Errorf("SKU detail - %v", err)
	}

	var response skuDetailResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("SKU detail - unmarshal - %v", err)
	}

	return response.Wrapper.Result, nil
}

// GetShipping fetches shipping information for a product id, keyed to the
// configured destination country
func (c *Connection) GetShipping(productID string) (*RawShipping, error) {
	r := apiRequest{
		connection: c,
		method:     methodShipping,
		params: map[string]string{
			"product_id":              productID,
			"send_goods_country_code": "CN",
			"target_country_code":     c.shipToCountry,
		},
	}

	data, err := r.Send()
	if err != nil {
		return nil, fmt.Errorf("Shipping info - %v", err)
	}

	var response shippingResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("Shipping info - unmarshal - %v", err)
	}

	return response.Wrapper.Result, nil
}

// QueryProducts runs the public keyword-search method and returns one page
// of candidates
func (c *Connection) QueryProducts(keywords string, pageSize int) ([]RawProduct, error) {
	if pageSize < 1 {
		pageSize = 10
	}

	r := apiRequest{
		connection: c,
		method:     methodProductQuery,
		params: map[string]string{
			"keywords":  keywords,
			"page_size": fmt.Sprintf("%d", pageSize),
			"sort":      "default",
		},
	}

	data, err := r.Send()
	if err != nil {
		return nil, fmt.Errorf("Product query - %v", err)
	}

	var response productQueryResponse
	if err = json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("Product query - unmarshal - %v", err)
	}

	return response.Wrapper.Result.Products, nil
}
