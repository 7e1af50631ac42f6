package gdax

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// sign computes the CB-ACCESS-SIGN header value: the base64 encoding of the
// HMAC-SHA256 over timestamp + METHOD + path + body, keyed with the base64
// decoded secret. The path includes the query string when present, and the
// body is the empty string for bodyless requests.
func sign(secret, timestamp, method, path, body string) (string, error) {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		// base64 decoding only ever happens on the secret key, so any
		// decode failure here is unambiguous.
		return "", ErrInvalidSecretKey
	}

	var sig = hmac.New(sha256.New, key)
	_, err = sig.Write([]byte(timestamp + strings.ToUpper(method) + path + body))
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(sig.Sum(nil)), nil
}
