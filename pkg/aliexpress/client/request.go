package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Request is implemented by apiRequest; it exists so callers above the
// transport only ever see raw bytes to unmarshal
type Request interface {
	Send() ([]byte, error)
}

// apiRequest is one signed call to the affiliate gateway. The common
// envelope is rebuilt per call so the millisecond timestamp and the
// signature are always fresh.
type apiRequest struct {
	connection *Connection
	method     string
	params     map[string]string
}

func (r apiRequest) envelope() map[string]string {
	params := map[string]string{
		"app_key":         r.connection.appKey,
		"method":          r.method,
		"timestamp":       strconv.FormatInt(time.Now().UnixMilli(), 10),
		"format":          "json",
		"v":               "2.0",
		"sign_method":     "md5",
		"target_currency": r.connection.targetCurrency,
		"target_language": r.connection.targetLanguage,
		"ship_to_country": r.connection.shipToCountry,
	}
	if r.connection.session != "" {
		params["session"] = r.connection.session
	}
	for k, v := range r.params {
		params[k] = v
	}
	params[SignKey] = Sign(params, r.connection.appSecret)

	return params
}

// Send implements the Request interface, returns raw bytes to be
// unmarshalled on a higher level
func (r apiRequest) Send() ([]byte, error) {
	form := url.Values{}
	for k, v := range r.envelope() {
		form.Set(k, v)
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		r.connection.baseURL,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.connection.rawClient.Do(req)
	if err != nil {
		log.WithFields(log.Fields{
			"method": r.method,
		}).Warnf("Request transport failed - %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	rawResponse, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"method": r.method,
			"status": resp.StatusCode,
		}).Warnf("Request rejected - %s", string(rawResponse))
		return nil, fmt.Errorf("Request failed: %s", resp.Status)
	}

	log.WithField("method", r.method).Debug("API request successful")

	return rawResponse, nil
}
