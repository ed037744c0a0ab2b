package linkparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveShapes(t *testing.T) {
	p := New()

	cases := []struct {
		name string
		url  string
		kind MatchKind
		id   string
	}{
		{
			name: "slugged item",
			url:  "https://www.aliexpress.com/item/wireless-earbuds/1005006123456789.html",
			kind: KindItemSlug,
			id:   "1005006123456789",
		},
		{
			name: "bare item",
			url:  "https://aliexpress.com/item/1005006123456789.html",
			kind: KindItem,
			id:   "1005006123456789",
		},
		{
			name: "mobile item",
			url:  "https://m.aliexpress.com/item/1005006123456789.html",
			kind: KindMobileItem,
			id:   "1005006123456789",
		},
		{
			name: "scheme omitted",
			url:  "www.aliexpress.com/item/32856123456.html",
			kind: KindItem,
			id:   "32856123456",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, ok := p.Resolve(tc.url)
			require.True(t, ok)
			assert.Equal(t, tc.kind, m.Kind)
			assert.Equal(t, tc.id, m.ProductID)
		})
	}
}

func TestResolveStoreProduct(t *testing.T) {
	p := New()

	m, ok := p.Resolve("https://www.aliexpress.com/store/product/some-thing/912345_4001234567890.html")
	require.True(t, ok)
	assert.Equal(t, KindStoreProduct, m.Kind)
	assert.Equal(t, "4001234567890", m.ProductID)
	assert.Equal(t, "912345", m.StoreID)
}

func TestResolveShortLink(t *testing.T) {
	p := New()

	m, ok := p.Resolve("https://a.aliexpress.com/_mNvNqR7")
	require.True(t, ok)
	assert.Equal(t, KindShortLink, m.Kind)
	assert.True(t, m.NeedsExpansion)
	assert.Equal(t, "mNvNqR7", m.ShortCode)
	assert.Empty(t, m.ProductID)
}

func TestResolveQueryAugmentation(t *testing.T) {
	p := New()

	m, ok := p.Resolve("https://www.aliexpress.com/item/abc/123456789.html?sku_id=55&spm=a2g0o.detail&scm=1007")
	require.True(t, ok)
	assert.Equal(t, "123456789", m.ProductID)
	assert.Equal(t, "55", m.SKUID)
	assert.Equal(t, "a2g0o.detail", m.Tracking["spm"])
	assert.Equal(t, "1007", m.Tracking["scm"])
}

func TestResolveSKUAliasPriority(t *testing.T) {
	p := New()

	// "sku" outranks "sku_id" in the alias list
	m, ok := p.Resolve("https://www.aliexpress.com/item/123456789.html?sku_id=99&sku=11")
	require.True(t, ok)
	assert.Equal(t, "11", m.SKUID)
}

func TestResolveRejectsForeignHosts(t *testing.T) {
	p := New()

	for _, raw := range []string{
		"https://www.amazon.com/item/123456789.html",
		"https://aliexpress.com.evil.io/item/123456789.html",
		"https://alienexpress.com/item/123456789.html",
		"not a url at all",
		"",
	} {
		_, ok := p.Resolve(raw)
		assert.False(t, ok, raw)
	}
}

func TestValidateProductID(t *testing.T) {
	assert.True(t, ValidateProductID("12345678"))
	assert.True(t, ValidateProductID("1005006123456789"))
	assert.False(t, ValidateProductID("1234567"))
	assert.False(t, ValidateProductID("12345a78"))
	assert.False(t, ValidateProductID(""))
}

func TestCleanURL(t *testing.T) {
	p := New()

	got := p.CleanURL("https://www.aliexpress.com/item/123456789.html?spm=a2g0o&utm_source=tg&sku_id=55")
	assert.Equal(t, "https://www.aliexpress.com/item/123456789.html?sku_id=55", got)

	got = p.CleanURL("https://www.aliexpress.com/item/123456789.html?spm=a2g0o")
	assert.Equal(t, "https://www.aliexpress.com/item/123456789.html", got)

	// unparseable input comes back unchanged
	assert.Equal(t, "::not-a-url::", p.CleanURL("::not-a-url::"))
}
