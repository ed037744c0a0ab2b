package linkparser

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"sahimarket.com/aliexbot/pkg/collection"
)

// MatchKind tags which path shape produced a LinkMatch
type MatchKind string

const (
	KindItemSlug     MatchKind = "item-slug"
	KindItem         MatchKind = "item"
	KindMobileItem   MatchKind = "mobile-item"
	KindStoreProduct MatchKind = "store-product"
	KindShortLink    MatchKind = "short-link"
)

var (
	// Hosts is the whitelist of marketplace hostnames, after stripping a
	// leading www label
	Hosts = []string{
		"aliexpress.com",
		"m.aliexpress.com",
		"a.aliexpress.com",
	}

	skuParams      = []string{"sku", "skuId", "sku_id", "variation"}
	trackingParams = []string{"spm", "scm"}

	// removed by CleanURL
	strippedParams = []string{
		"spm", "scm", "_t", "algo_pvid", "algo_expid", "btsid",
		"ws_ab_test", "pvid", "ptl", "utm_source", "utm_medium",
		"utm_campaign", "utm_content", "utm_term",
	}
)

// LinkMatch is the result of resolving a marketplace URL
type LinkMatch struct {
	Kind           MatchKind
	ProductID      string
	Slug           string
	SKUID          string
	StoreID        string
	ShortCode      string
	Tracking       map[string]string
	NeedsExpansion bool
}

type pattern struct {
	kind    MatchKind
	re      *regexp.Regexp
	extract func(groups []string, m *LinkMatch)
}

// Parser resolves marketplace links into structured product references
type Parser struct {
	patterns []pattern
}

// New returns a Parser with the pattern chain in priority order.
// The order matters: the first matching pattern wins.
func New() *Parser {
	return &Parser{
		patterns: []pattern{
			{
				kind: KindItemSlug,
				re:   regexp.MustCompile(`^https?://(?:www\.)?aliexpress\.com/item/([^/]+)/(\d+)\.html`),
				extract: func(groups []string, m *LinkMatch) {
					m.Slug = groups[1]
					m.ProductID = groups[2]
				},
			},
			{
				kind: KindItem,
				re:   regexp.MustCompile(`^https?://(?:www\.)?aliexpress\.com/item/(\d+)\.html`),
				extract: func(groups []string, m *LinkMatch) {
					m.ProductID = groups[1]
				},
			},
			{
				kind: KindMobileItem,
				re:   regexp.MustCompile(`^https?://m\.aliexpress\.com/item/(\d+)\.html`),
				extract: func(groups []string, m *LinkMatch) {
					m.ProductID = groups[1]
				},
			},
			{
				kind: KindStoreProduct,
				re:   regexp.MustCompile(`^https?://(?:www\.)?aliexpress\.com/store/product/[^/]+/(\d+)_(\d+)\.html`),
				extract: func(groups []string, m *LinkMatch) {
					m.StoreID = groups[1]
					m.ProductID = groups[2]
				},
			},
			{
				kind: KindShortLink,
				re:   regexp.MustCompile(`^https?://a\.aliexpress\.com/_([a-zA-Z0-9]+)`),
				extract: func(groups []string, m *LinkMatch) {
					m.ShortCode = groups[1]
					m.NeedsExpansion = true
				},
			},
		},
	}
}

// IsMarketplaceURL checks that the input parses as a URL and its host,
// stripped of a leading www label, is on the marketplace whitelist
func (p *Parser) IsMarketplaceURL(raw string) bool {
	u, err := url.Parse(normalizeScheme(raw))
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	host = strings.TrimPrefix(host, "www.")

	return collection.StringInList(host, Hosts)
}

// Resolve classifies a link and extracts the embedded product reference.
// A false return means the text is not a resolvable marketplace link;
// that is a normal negative, never an error.
func (p *Parser) Resolve(raw string) (m *LinkMatch, ok bool) {
	if !p.IsMarketplaceURL(raw) {
		return nil, false
	}

	normalized := normalizeScheme(raw)

	for i := range p.patterns {
		groups := p.patterns[i].re.FindStringSubmatch(normalized)
		if groups == nil {
			continue
		}
		m = &LinkMatch{
			Kind:     p.patterns[i].kind,
			Tracking: make(map[string]string),
		}
		p.patterns[i].extract(groups, m)
		break
	}
	if m == nil {
		log.WithField("url", raw).Warn("No link pattern matched")
		return nil, false
	}

	p.augmentFromQuery(normalized, m)

	log.WithFields(log.Fields{
		"kind":    m.Kind,
		"product": m.ProductID,
		"sku":     m.SKUID,
	}).Debug("Link resolved")

	return m, true
}

// augmentFromQuery attaches the SKU id and known tracking parameters,
// independent of which path pattern matched
func (p *Parser) augmentFromQuery(raw string, m *LinkMatch) {
	u, err := url.Parse(raw)
	if err != nil {
		return
	}
	query := u.Query()

	for _, name := range skuParams {
		if v := query.Get(name); v != "" {
			m.SKUID = v
			break
		}
	}
	for _, name := range trackingParams {
		if v := query.Get(name); v != "" {
			m.Tracking[name] = v
		}
	}
}

// ValidateProductID reports whether an id looks like a real product id:
// all digits and at least 8 characters. Callers use it as a sanity check,
// Resolve does not enforce it.
func ValidateProductID(id string) bool {
	if len(id) < 8 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CleanURL removes the known tracking parameters and rebuilds a canonical
// URL string. On any parse failure the input is returned unchanged.
func (p *Parser) CleanURL(raw string) string {
	u, err := url.Parse(normalizeScheme(raw))
	if err != nil || u.Host == "" {
		return raw
	}

	query := u.Query()
	for _, name := range strippedParams {
		query.Del(name)
	}

	cleaned := fmt.Sprintf("%s://%s%s", u.Scheme, u.Host, u.Path)
	if len(query) == 0 {
		return cleaned
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+query.Get(k))
	}

	return cleaned + "?" + strings.Join(pairs, "&")
}

func normalizeScheme(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}
