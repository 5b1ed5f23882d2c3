package vanco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseResponse tests response flattening
func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		validate func(t *testing.T, resp map[string]any, err error)
	}{
		{
			name: "top-level leaves keep their own tag",
			body: `<VancoWS><Status>OK</Status></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "OK", resp["status"])
			},
		},
		{
			name: "login response yields session id",
			body: `<VancoWS><Response><SessionID>session-token-1</SessionID></Response></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "session-token-1", resp["response_sessionid"])
			},
		},
		{
			name: "transaction references flatten through their container",
			body: `<VancoWS><Response><ResponseVars><CustomerRef>1</CustomerRef><PaymentMethodRef>2</PaymentMethodRef><TransactionRef>3</TransactionRef></ResponseVars></Response></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "1", resp["response_customerref"])
				assert.Equal(t, "2", resp["response_paymentmethodref"])
				assert.Equal(t, "3", resp["response_transactionref"])
			},
		},
		{
			name: "deeper structure becomes a nested mapping",
			body: `<VancoWS><Response><Errors><Error><ErrorCode>286</ErrorCode><ErrorDescription>Invalid Credit Card Number</ErrorDescription></Error></Errors></Response></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				errs, ok := resp["response_errors"].(map[string]any)
				require.True(t, ok, "response_errors should be a nested mapping")
				inner, ok := errs["Error"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "286", inner["ErrorCode"])
				assert.Equal(t, "Invalid Credit Card Number", inner["ErrorDescription"])
			},
		},
		{
			name: "mixed response keeps every leaf under exactly one key",
			body: `<VancoWS><Auth><RequestType>LoginResponse</RequestType></Auth><Response><SessionID>abc</SessionID></Response></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "LoginResponse", resp["auth_requesttype"])
				assert.Equal(t, "abc", resp["response_sessionid"])
				assert.Len(t, resp, 2)
			},
		},
		{
			name: "whitespace around leaf text is trimmed",
			body: "<VancoWS>\n  <Response>\n    <SessionID>\n      abc\n    </SessionID>\n  </Response>\n</VancoWS>",
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Equal(t, "abc", resp["response_sessionid"])
			},
		},
		{
			name: "empty root parses to an empty mapping",
			body: `<VancoWS></VancoWS>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				require.NoError(t, err)
				assert.Empty(t, resp)
			},
		},
		{
			name: "malformed input is a hard failure",
			body: `this is not xml`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				assert.Error(t, err)
				assert.Nil(t, resp)
			},
		},
		{
			name: "truncated document is a hard failure",
			body: `<VancoWS><Response>`,
			validate: func(t *testing.T, resp map[string]any, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := parseResponse([]byte(tt.body))
			tt.validate(t, resp, err)
		})
	}
}

// TestParseResponseSnapshot tests that the mapping reflects only what the
// server returned
func TestParseResponseSnapshot(t *testing.T) {
	resp, err := parseResponse([]byte(`<VancoWS><Response><CustomerRef>7</CustomerRef></Response></VancoWS>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"response_customerref": "7"}, resp)
}
