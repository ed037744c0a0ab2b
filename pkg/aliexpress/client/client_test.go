package client

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConnection(t *testing.T, session string, handler http.HandlerFunc) *Connection {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conn, err := NewConnection("app-key", "app-secret", session, server.URL, "USD", "AR", "DZ")
	require.NoError(t, err)
	return conn
}

func TestNewConnectionRejectsEmptyCredentials(t *testing.T) {
	_, err := NewConnection("", "", "", "", "USD", "AR", "DZ")
	assert.Error(t, err)
}

func TestRequestEnvelope(t *testing.T) {
	var form url.Values
	conn := newTestConnection(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"aliexpress_affiliate_product_query_response":{"result":{"products":[]}}}`))
	})

	_, err := conn.QueryProducts("1005006123456789", 10)
	require.NoError(t, err)

	assert.Equal(t, "app-key", form.Get("app_key"))
	assert.Equal(t, "aliexpress.affiliate.product.query", form.Get("method"))
	assert.Equal(t, "json", form.Get("format"))
	assert.Equal(t, "2.0", form.Get("v"))
	assert.Equal(t, "md5", form.Get("sign_method"))
	assert.Equal(t, "USD", form.Get("target_currency"))
	assert.Equal(t, "AR", form.Get("target_language"))
	assert.Equal(t, "DZ", form.Get("ship_to_country"))
	assert.Equal(t, "session-token", form.Get("session"))
	assert.Equal(t, "1005006123456789", form.Get("keywords"))
	assert.NotEmpty(t, form.Get("timestamp"))

	// the signature is recomputable from the sent parameters
	params := make(map[string]string, len(form))
	for k := range form {
		if k == SignKey {
			continue
		}
		params[k] = form.Get(k)
	}
	assert.Equal(t, Sign(params, "app-secret"), form.Get(SignKey))
}

func TestRequestOmitsSessionWhenUnauthenticated(t *testing.T) {
	var form url.Values
	conn := newTestConnection(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		form = r.PostForm
		w.Write([]byte(`{"aliexpress_affiliate_product_query_response":{"result":{"products":[]}}}`))
	})

	_, err := conn.QueryProducts("12345678", 10)
	require.NoError(t, err)

	_, present := form["session"]
	assert.False(t, present)
	assert.False(t, conn.Authenticated())
}

func TestGetProductDetail(t *testing.T) {
	conn := newTestConnection(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "aliexpress.affiliate.productdetail.get", r.PostForm.Get("method"))
		assert.Equal(t, "1005006123456789", r.PostForm.Get("product_ids"))
		assert.NotEmpty(t, r.PostForm.Get("fields"))

		w.Write([]byte(`{
			"aliexpress_affiliate_productdetail_get_response": {
				"result": {
					"products": [
						{
							"product_id": 1005006123456789,
							"product_title": "Wireless Earbuds TWS",
							"sale_price": "12.49",
							"evaluate_rate": "94.6%"
						}
					]
				}
			}
		}`))
	})

	raw, err := conn.GetProductDetail("1005006123456789")
	require.NoError(t, err)
	require.NotNil(t, raw)
	assert.Equal(t, int64(1005006123456789), raw.ProductID)
	assert.Equal(t, "Wireless Earbuds TWS", raw.Title)
}

func TestGetProductDetailEmptyResult(t *testing.T) {
	conn := newTestConnection(t, "session-token", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"aliexpress_affiliate_productdetail_get_response":{"result":{"products":[]}}}`))
	})

	raw, err := conn.GetProductDetail("99999999")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestRequestNon200IsAnError(t *testing.T) {
	conn := newTestConnection(t, "", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway error", http.StatusBadGateway)
	})

	_, err := conn.QueryProducts("12345678", 10)
	assert.Error(t, err)
}

func TestRequestMalformedBodyIsAnError(t *testing.T) {
	conn := newTestConnection(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	})

	_, err := conn.QueryProducts("12345678", 10)
	assert.Error(t, err)
}
