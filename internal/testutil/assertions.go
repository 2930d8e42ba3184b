package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope mirrors the response body shared by every endpoint
type Envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// ReadEnvelope decodes the response envelope
func ReadEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var env Envelope
	require.NoError(t, json.Unmarshal(body, &env), "failed to unmarshal response: %s", string(body))
	return env
}

// DecodeEnvelope decodes a successful envelope's data into v
func DecodeEnvelope(t *testing.T, resp *http.Response, v interface{}) Envelope {
	t.Helper()

	env := ReadEnvelope(t, resp)
	require.True(t, env.Success, "expected success envelope, got %q", env.Message)
	require.NoError(t, json.Unmarshal(env.Data, v), "failed to unmarshal data: %s", string(env.Data))
	return env
}

// AssertErrorResponse verifies a failure envelope with expected status
func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int) {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")

	env := ReadEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.Equal(t, expectedStatus, env.Code)
	assert.NotEmpty(t, env.Message)
}

// AssertDecimal compares decimals by value, so "60" equals "60.00"
func AssertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, want.Equal(actual), "expected %s, got %s", want, actual)
}
