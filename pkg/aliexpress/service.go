package aliexpress

import (
	"errors"
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"

	"sahimarket.com/aliexbot/pkg/aliexpress/client"
)

// ErrNotFound marks a lookup that reached the API but matched no product.
// It is distinct from transport failures, which callers surface as
// try-again-later.
var ErrNotFound = errors.New("product not found")

// API is the slice of the affiliate connection the lookup service uses
type API interface {
	Authenticated() bool
	GetProductDetail(productID string) (*client.RawProduct, error)
	GetSKUDetail(productID, skuID string) (*client.RawSKUDetail, error)
	GetShipping(productID string) (*client.RawShipping, error)
	QueryProducts(keywords string, pageSize int) ([]client.RawProduct, error)
}

// Service resolves product ids into normalized records. The strategy is
// capability-selected at construction: a session token enables the keyed
// detail endpoints, otherwise lookups go through the public keyword search.
type Service struct {
	api      API
	pageSize int
}

// NewService returns a lookup Service on top of an affiliate connection
func NewService(api API, pageSize int) *Service {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Service{
		api:      api,
		pageSize: pageSize,
	}
}

// Lookup fetches the normalized product record for a product id. A SKU id
// from the link adds one SKU-detail call in authenticated mode.
func (s *Service) Lookup(productID, skuID string) (*Product, error) {
	if s.api.Authenticated() {
		return s.lookupDetail(productID, skuID)
	}
	return s.lookupPublic(productID)
}

func (s *Service) lookupDetail(productID, skuID string) (*Product, error) {
	raw, err := s.api.GetProductDetail(productID)
	if err != nil {
		return nil, fmt.Errorf("Lookup - %v", err)
	}
	if raw == nil {
		return nil, ErrNotFound
	}

	p := FromRaw(raw)

	if skuID != "" {
		skuRaw, err := s.api.GetSKUDetail(productID, skuID)
		if err != nil {
			// SKU detail is an enrichment, the product record stands on its own
			log.WithFields(log.Fields{
				"product": productID,
				"sku":     skuID,
			}).Warnf("SKU detail unavailable - %v", err)
		} else {
			p.MergeSKUDetail(skuRaw)
		}
	}

	return p, nil
}

// lookupPublic has no fetch-by-id endpoint to call. It searches for the id
// as a keyword and prefers an exact id match in the page; failing that it
// settles for the first result, which may be unrelated. That trade-off is
// deliberate and the result is marked non-exact.
func (s *Service) lookupPublic(productID string) (*Product, error) {
	page, err := s.api.QueryProducts(productID, s.pageSize)
	if err != nil {
		return nil, fmt.Errorf("Lookup - %v", err)
	}

	if len(page) == 0 && len(productID) > 8 {
		loose := productID[len(productID)-8:]
		page, err = s.api.QueryProducts(loose, s.pageSize)
		if err != nil {
			return nil, fmt.Errorf("Lookup - %v", err)
		}
	}
	if len(page) == 0 {
		return nil, ErrNotFound
	}

	for i := range page {
		if strconv.FormatInt(page[i].ProductID, 10) == productID {
			return FromRaw(&page[i]), nil
		}
	}

	log.WithFields(log.Fields{
		"product": productID,
		"matched": page[0].ProductID,
	}).Warn("No exact id match in search page, using first result")

	p := FromRaw(&page[0])
	p.Exact = false

	return p, nil
}

// GetShipping fetches shipping information for a product. A nil return is
// a documented fallback, not an error: the formatter substitutes the
// generic estimate for the configured destination.
func (s *Service) GetShipping(productID string) *Shipping {
	if !s.api.Authenticated() {
		return nil
	}

	raw, err := s.api.GetShipping(productID)
	if err != nil {
		log.WithField("product", productID).Warnf("Shipping lookup failed - %v", err)
		return nil
	}

	return shippingFromRaw(raw)
}
