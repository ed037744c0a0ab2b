package botservice

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"

	"sahimarket.com/aliexbot/pkg/aliexpress"
	"sahimarket.com/aliexbot/pkg/format"
	"sahimarket.com/aliexbot/pkg/linkparser"
)

// renderFault is the reply for a defect inside rendering itself
const renderFault = "❌ حدث خطأ في تنسيق معلومات المنتج"

// ProductLookup is the slice of the affiliate service the pipeline needs
type ProductLookup interface {
	Lookup(productID, skuID string) (*aliexpress.Product, error)
	GetShipping(productID string) *aliexpress.Shipping
}

// Pipeline runs one incoming message through resolve → fetch → format.
// It holds no per-message state; concurrent messages run independently.
type Pipeline struct {
	parser    *linkparser.Parser
	products  ProductLookup
	formatter *format.Formatter
}

// NewPipeline wires the three stages together
func NewPipeline(parser *linkparser.Parser, products ProductLookup, formatter *format.Formatter) *Pipeline {
	return &Pipeline{
		parser:    parser,
		products:  products,
		formatter: formatter,
	}
}

// HandleText turns one message text into the reply chunks to send. Every
// failure maps to a canned localized message; HandleText never returns an
// empty slice and never propagates an error.
func (p *Pipeline) HandleText(text string) []string {
	match, ok := p.parser.Resolve(strings.TrimSpace(text))
	if !ok {
		return []string{format.ErrorMessage(format.ErrInvalidLink, "")}
	}

	if match.NeedsExpansion || match.ProductID == "" {
		// shortened links need a redirect-following step we don't do
		return []string{format.ErrorMessage(
			format.ErrInvalidLink,
			"الروابط المختصرة غير مدعومة، يرجى إرسال الرابط الكامل للمنتج",
		)}
	}

	if !linkparser.ValidateProductID(match.ProductID) {
		log.WithField("product", match.ProductID).Warn("Product id fails validity check, attempting lookup anyway")
	}

	product, err := p.products.Lookup(match.ProductID, match.SKUID)
	if err != nil {
		if errors.Is(err, aliexpress.ErrNotFound) {
			return []string{format.ErrorMessage(format.ErrNotFound, "")}
		}
		log.WithField("product", match.ProductID).Warnf("Lookup failed - %v", err)
		return []string{format.ErrorMessage(format.ErrAPI, "")}
	}

	shipping := p.products.GetShipping(match.ProductID)

	return format.Split(p.render(product, shipping))
}

// render isolates the formatter behind a recover so a defect in one
// malformed field cannot take the handler down
func (p *Pipeline) render(product *aliexpress.Product, shipping *aliexpress.Shipping) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("product", product.ID).Errorf("Render fault - %v", r)
			msg = renderFault
		}
	}()

	return p.formatter.Render(product, shipping)
}
