package aliexpress

// Breakdown is the derived price composition; it is recomputed per render
// and never stored
type Breakdown struct {
	Base         float64
	ShippingCost float64
	Subtotal     float64
	TaxAmount    float64
	Total        float64
}

// ComputeTotal derives the full price breakdown. Pure function:
// subtotal = base + shipping, tax = subtotal * rate, total = subtotal + tax.
func ComputeTotal(base, shippingCost, taxRate float64) Breakdown {
	subtotal := base + shippingCost
	tax := subtotal * taxRate

	return Breakdown{
		Base:         base,
		ShippingCost: shippingCost,
		Subtotal:     subtotal,
		TaxAmount:    tax,
		Total:        subtotal + tax,
	}
}
