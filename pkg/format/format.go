// Package format renders normalized product records into the Arabic
// Telegram messages the bot replies with.
package format

import (
	"fmt"
	"sort"
	"strings"

	"sahimarket.com/aliexbot/pkg/aliexpress"
	"sahimarket.com/aliexbot/pkg/collection"
)

const (
	maxTitleRunes = 100
	maxStars      = 5
	minStars      = 1
)

// section header templates
const (
	tplPriceHeader    = "💰 **الأسعار:**\n"
	tplShippingHeader = "🚚 **معلومات الشحن:**\n"
	tplRatingHeader   = "⭐ **التقييمات:**\n"
	tplSellerHeader   = "🏪 **معلومات البائع:**\n"
	tplCategoryHeader = "📂 **الفئة:**\n"
	tplVariantHeader  = "🎨 **المتغيرات المتاحة:**\n"

	footer = "\n📱 **تم إنشاؤه بواسطة بوت معلومات علي إكسبريس**"

	inexactNote = "⚠️ لم يتم العثور على تطابق دقيق، هذه أقرب نتيجة بحث\n\n"

	// generic shipping estimate used when the upstream endpoint is
	// unavailable
	fallbackDelivery = "15-30 يوم"
	fallbackMethod   = "الشحن العادي"
)

// Formatter renders product records into localized, length-bounded text.
// It is stateless across messages; construct once and reuse.
type Formatter struct {
	taxRate     float64
	rules       aliexpress.ShippingCostRuleSet
	destination string
}

// New returns a Formatter. destination is the localized label of the
// ship-to country used in the shipping section.
func New(taxRate float64, destination string) *Formatter {
	return &Formatter{
		taxRate:     taxRate,
		rules:       aliexpress.DefaultShippingCostRules(),
		destination: destination,
	}
}

// Render produces the full message for one product. Sections are ordered
// and independently optional: a missing source field drops its section
// entirely, and no section can suppress the ones after it.
func (f *Formatter) Render(p *aliexpress.Product, s *aliexpress.Shipping) string {
	var parts []string

	parts = append(parts, f.headerSection(p))
	parts = append(parts, f.imageSection(p))
	parts = append(parts, f.priceSection(p, s))
	parts = append(parts, f.ratingSection(p))
	parts = append(parts, f.categorySection(p))
	parts = append(parts, f.sellerSection(p))
	parts = append(parts, f.shippingSection(s))
	parts = append(parts, f.variantSection(p))
	parts = append(parts, f.linkSection(p))

	var b strings.Builder
	for i := range parts {
		b.WriteString(parts[i])
	}
	b.WriteString(footer)

	return strings.TrimSpace(b.String())
}

func (f *Formatter) headerSection(p *aliexpress.Product) string {
	title := collection.SanitizeTitle(p.Title)
	if title == "" {
		title = "غير متاح"
	}
	title = collection.TruncateRunes(title, maxTitleRunes)

	section := fmt.Sprintf("🛍️ **%s**\n\n", title)
	if !p.Exact {
		section += inexactNote
	}
	return section
}

func (f *Formatter) imageSection(p *aliexpress.Product) string {
	if p.ImageURL == "" {
		return ""
	}
	return fmt.Sprintf("[📸 صورة المنتج](%s)\n\n", p.ImageURL)
}

func (f *Formatter) priceSection(p *aliexpress.Product, s *aliexpress.Shipping) string {
	section := tplPriceHeader

	if p.OriginalPrice != nil {
		section += fmt.Sprintf("• السعر الأصلي: $%.2f\n", *p.OriginalPrice)
	}
	if p.SalePrice != nil {
		section += fmt.Sprintf("• سعر البيع: **$%.2f**\n", *p.SalePrice)

		if p.OriginalPrice != nil && *p.OriginalPrice > *p.SalePrice {
			discount := (*p.OriginalPrice - *p.SalePrice) / *p.OriginalPrice * 100
			section += fmt.Sprintf("• الخصم: %.0f%%\n", discount)
		}
	}

	base, ok := p.BasePrice()
	if !ok {
		if section == tplPriceHeader {
			return ""
		}
		return section + "\n"
	}

	shippingCost := f.rules.EstimateCost(base)
	if s != nil && s.Cost != nil {
		shippingCost = *s.Cost
	}

	breakdown := aliexpress.ComputeTotal(base, shippingCost, f.taxRate)

	section += fmt.Sprintf("• تكلفة الشحن المقدرة: $%.2f\n", breakdown.ShippingCost)
	section += fmt.Sprintf("• الضرائب المقدرة (%.0f%%): $%.2f\n", f.taxRate*100, breakdown.TaxAmount)
	section += fmt.Sprintf("• **المجموع الكلي المقدر: $%.2f**\n", breakdown.Total)

	return section + "\n"
}

func (f *Formatter) ratingSection(p *aliexpress.Product) string {
	if p.Rating == nil {
		return ""
	}

	stars, label := starRating(*p.Rating, p.RatingScale)

	section := tplRatingHeader
	section += fmt.Sprintf("• التقييم: %s (%s)\n", stars, label)
	if p.ReviewCount != nil {
		section += fmt.Sprintf("• عدد التقييمات: %d\n", *p.ReviewCount)
	}

	return section + "\n"
}

// starRating converts a raw rating into a bounded star string plus its
// display label. Percentages scale down to the 5-point scale, direct
// values truncate to an integer count; both clamp to [1,5].
func starRating(value float64, scale aliexpress.RatingScale) (stars, label string) {
	var count int
	switch scale {
	case aliexpress.ScalePercent:
		count = int(value / 20)
		label = fmt.Sprintf("%.1f%%", value)
	case aliexpress.ScaleFive:
		count = int(value)
		label = fmt.Sprintf("%.1f/5", value)
	default:
		count = int(value)
		label = fmt.Sprintf("%.1f", value)
	}

	if count < minStars {
		count = minStars
	}
	if count > maxStars {
		count = maxStars
	}

	return strings.Repeat("⭐", count), label
}

func (f *Formatter) categorySection(p *aliexpress.Product) string {
	if p.CategoryPrimary == "" && p.CategorySecondary == "" {
		return ""
	}

	section := tplCategoryHeader
	if p.CategoryPrimary != "" {
		section += fmt.Sprintf("• الفئة الرئيسية: %s\n", p.CategoryPrimary)
	}
	if p.CategorySecondary != "" {
		section += fmt.Sprintf("• الفئة الفرعية: %s\n", p.CategorySecondary)
	}

	return section + "\n"
}

func (f *Formatter) sellerSection(p *aliexpress.Product) string {
	if p.ShopID == "" && p.ShopURL == "" {
		return ""
	}

	section := tplSellerHeader
	if p.ShopID != "" {
		section += fmt.Sprintf("• معرف المتجر: %s\n", p.ShopID)
	}
	if p.ShopURL != "" {
		section += fmt.Sprintf("• [زيارة المتجر](%s)\n", p.ShopURL)
	}

	return section + "\n"
}

func (f *Formatter) shippingSection(s *aliexpress.Shipping) string {
	delivery := fallbackDelivery
	method := fallbackMethod
	destination := f.destination

	if s != nil {
		if s.EstimatedDelivery != "" {
			delivery = s.EstimatedDelivery
		} else if s.MaxDays > 0 {
			delivery = fmt.Sprintf("%d-%d يوم", s.MinDays, s.MaxDays)
		}
		if s.Method != "" {
			method = s.Method
		}
		if s.Destination != "" {
			destination = s.Destination
		}
	}

	section := tplShippingHeader
	section += fmt.Sprintf("• مدة التوصيل المقدرة: %s\n", delivery)
	section += fmt.Sprintf("• طريقة الشحن: %s\n", method)
	if destination != "" {
		section += fmt.Sprintf("• الوجهة: %s\n", destination)
	}
	section += "• ملاحظة: أوقات الشحن قد تختلف حسب الموقع والظروف\n"

	return section + "\n"
}

func (f *Formatter) variantSection(p *aliexpress.Product) string {
	if len(p.VariantGroups) == 0 {
		return ""
	}

	names := make([]string, 0, len(p.VariantGroups))
	for name := range p.VariantGroups {
		names = append(names, name)
	}
	sort.Strings(names)

	section := tplVariantHeader
	for _, name := range names {
		values := collection.SortedUnique(p.VariantGroups[name])
		if len(values) == 0 {
			continue
		}
		section += fmt.Sprintf("• %s: %s\n", name, strings.Join(values, "، "))
	}
	if section == tplVariantHeader {
		return ""
	}

	return section + "\n"
}

func (f *Formatter) linkSection(p *aliexpress.Product) string {
	if p.DetailURL == "" {
		return ""
	}
	return fmt.Sprintf("🔗 **رابط المنتج:** [اضغط هنا للشراء](%s)\n\n", p.DetailURL)
}
