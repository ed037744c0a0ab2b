package client

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
	"strings"
)

// SignKey is the parameter the computed digest is attached under.
// It must never be present in the map passed to Sign.
const SignKey = "sign"

// Sign canonicalizes params into the digest the remote API expects:
// entries sorted by key (bytewise), concatenated as key||value with no
// separators, wrapped secret||paramString||secret, MD5, uppercase hex.
// Any deviation from this exact scheme gets every call rejected upstream.
func Sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == SignKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(secret)
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(params[k])
	}
	b.WriteString(secret)

	digest := md5.Sum([]byte(b.String()))

	return strings.ToUpper(hex.EncodeToString(digest[:]))
}
