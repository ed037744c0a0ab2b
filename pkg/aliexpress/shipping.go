package aliexpress

import (
	"sahimarket.com/aliexbot/pkg/aliexpress/client"
)

// Shipping is the normalized shipping record for one product and
// destination. A nil Shipping at the formatter boundary means the upstream
// endpoint was unavailable and generic defaults apply.
type Shipping struct {
	EstimatedDelivery string
	MinDays           int
	MaxDays           int
	Method            string
	Cost              *float64
	Destination       string
}

type shippingCostTier struct {
	maxBase float64
	cost    float64
}

// ShippingCostRuleSet estimates a shipping cost from the base price when
// the upstream shipping endpoint did not supply one
type ShippingCostRuleSet struct {
	tiers       []shippingCostTier
	defaultCost float64
}

// DefaultShippingCostRules returns the three-tier heuristic: cheap items
// ship cheap, expensive items carry the high flat estimate
func DefaultShippingCostRules() ShippingCostRuleSet {
	return ShippingCostRuleSet{
		tiers: []shippingCostTier{
			{maxBase: 10, cost: 2.99},
			{maxBase: 50, cost: 5.99},
		},
		defaultCost: 9.99,
	}
}

// EstimateCost returns the estimated shipping cost for a base price
func (s ShippingCostRuleSet) EstimateCost(base float64) float64 {
	for i := range s.tiers {
		if base < s.tiers[i].maxBase {
			return s.tiers[i].cost
		}
	}
	return s.defaultCost
}

func shippingFromRaw(raw *client.RawShipping) *Shipping {
	if raw == nil {
		return nil
	}
	return &Shipping{
		EstimatedDelivery: raw.EstimatedDelivery,
		MinDays:           raw.MinDeliveryDays,
		MaxDays:           raw.MaxDeliveryDays,
		Method:            raw.ShippingMethod,
		Cost:              parsePrice(raw.ShippingCost),
		Destination:       raw.Destination,
	}
}
