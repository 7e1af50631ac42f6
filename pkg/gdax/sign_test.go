package gdax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// test secret is the base64 encoding of "gdax-go-test-secret-0123456789ab"
const testSecret = "Z2RheC1nby10ZXN0LXNlY3JldC0wMTIzNDU2Nzg5YWI="

func TestSign_KnownVectors(t *testing.T) {
	sig, err := sign(testSecret, "1533531532", "GET", "/accounts", "")
	assert.NoError(t, err)
	assert.Equal(t, "CA6rOJgL7Zhx+rCGLo74XU+qhD+u89UlVdM9jUmnEmQ=", sig)

	sig, err = sign(testSecret, "1533531532", "POST", "/orders", `{"type":"limit"}`)
	assert.NoError(t, err)
	assert.Equal(t, "M2xkUQ5qlygZVR3IaKE9polnaKXWrJP0LfjSSaO6EH8=", sig)
}

func TestSign_Deterministic(t *testing.T) {
	first, err := sign(testSecret, "1533531532", "GET", "/accounts", "")
	assert.NoError(t, err)
	second, err := sign(testSecret, "1533531532", "GET", "/accounts", "")
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSign_MethodUppercased(t *testing.T) {
	upper, err := sign(testSecret, "1533531532", "GET", "/accounts", "")
	assert.NoError(t, err)
	lower, err := sign(testSecret, "1533531532", "get", "/accounts", "")
	assert.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestSign_InputSensitivity(t *testing.T) {
	base, err := sign(testSecret, "1533531532", "GET", "/accounts", "")
	assert.NoError(t, err)

	shifted, err := sign(testSecret, "1533531533", "GET", "/accounts", "")
	assert.NoError(t, err)
	assert.Equal(t, "APw8KaIopNtNC/8QGBz6jGex4NuVNWDEQ+xlvf1OGBo=", shifted)
	assert.NotEqual(t, base, shifted)

	otherPath, err := sign(testSecret, "1533531532", "GET", "/orders", "")
	assert.NoError(t, err)
	assert.NotEqual(t, base, otherPath)

	otherMethod, err := sign(testSecret, "1533531532", "DELETE", "/accounts", "")
	assert.NoError(t, err)
	assert.NotEqual(t, base, otherMethod)

	withBody, err := sign(testSecret, "1533531532", "GET", "/accounts", "x")
	assert.NoError(t, err)
	assert.NotEqual(t, base, withBody)
}

func TestSign_InvalidSecretKey(t *testing.T) {
	_, err := sign("!!!not-base64!!!", "1533531532", "GET", "/accounts", "")
	assert.ErrorIs(t, err, ErrInvalidSecretKey)
}
