package vanco

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveOutcome tests success and failure derivation
func TestResolveOutcome(t *testing.T) {
	t.Run("no error block means success", func(t *testing.T) {
		resp := map[string]any{
			"response_customerref":      "1",
			"response_paymentmethodref": "2",
			"response_transactionref":   "3",
		}
		outcome := resolveOutcome(resp)

		assert.True(t, outcome.Succeeded)
		assert.Equal(t, "Success", outcome.Message)
		assert.Empty(t, outcome.ErrorCode)
		assert.Equal(t, "1|2|3", outcome.Authorization)
		assert.Equal(t, resp, outcome.Raw)
	})

	t.Run("error block carries code and description", func(t *testing.T) {
		resp := map[string]any{
			"response_errors": map[string]any{
				"Error": map[string]any{
					"ErrorCode":        "286",
					"ErrorDescription": "Invalid Credit Card Number",
				},
			},
		}
		outcome := resolveOutcome(resp)

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, "Invalid Credit Card Number", outcome.Message)
		assert.Equal(t, "286", outcome.ErrorCode)
	})

	t.Run("authorization is computed even on failure", func(t *testing.T) {
		resp := map[string]any{
			"response_errors": map[string]any{
				"Error": map[string]any{
					"ErrorCode":        "475",
					"ErrorDescription": "Declined",
				},
			},
			"response_customerref":    "9",
			"response_transactionref": "t",
		}
		outcome := resolveOutcome(resp)

		assert.False(t, outcome.Succeeded)
		assert.Equal(t, "9||t", outcome.Authorization)
	})

	t.Run("unexpected error shape degrades to empty fields", func(t *testing.T) {
		resp := map[string]any{"response_errors": "boom"}
		outcome := resolveOutcome(resp)

		assert.False(t, outcome.Succeeded)
		assert.Empty(t, outcome.Message)
		assert.Empty(t, outcome.ErrorCode)
	})
}

// TestComposeAuthorization tests reference joining with missing fields
func TestComposeAuthorization(t *testing.T) {
	tests := []struct {
		name string
		resp map[string]any
		want string
	}{
		{
			name: "all references present",
			resp: map[string]any{
				"response_customerref":      "1",
				"response_paymentmethodref": "2",
				"response_transactionref":   "3",
			},
			want: "1|2|3",
		},
		{
			name: "missing references become empty components",
			resp: map[string]any{},
			want: "||",
		},
		{
			name: "partial references keep their position",
			resp: map[string]any{"response_paymentmethodref": "pm"},
			want: "|pm|",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, composeAuthorization(tt.resp))
		})
	}
}

// TestSplitAuthorization tests token decomposition round-trips
func TestSplitAuthorization(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  [3]string
	}{
		{"full token", "a|b|c", [3]string{"a", "b", "c"}},
		{"empty components", "||", [3]string{"", "", ""}},
		{"missing trailing components", "a", [3]string{"a", "", ""}},
		{"empty token", "", [3]string{"", "", ""}},
		{"leading empty component", "|b|c", [3]string{"", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, p, tr := splitAuthorization(tt.token)
			assert.Equal(t, tt.want, [3]string{c, p, tr})
		})
	}
}

// TestAuthorizationRoundTrip tests join/split losslessness
func TestAuthorizationRoundTrip(t *testing.T) {
	for _, parts := range [][3]string{
		{"a", "b", "c"},
		{"", "", ""},
		{"12345", "", "tx-9"},
	} {
		token := strings.Join(parts[:], "|")
		c, p, tr := splitAuthorization(token)
		assert.Equal(t, parts, [3]string{c, p, tr})
	}
}

// TestSessionID tests session extraction from a parsed login response
func TestSessionID(t *testing.T) {
	resp, err := parseResponse([]byte(`<VancoWS><Response><SessionID>opaque-token</SessionID></Response></VancoWS>`))
	require.NoError(t, err)

	assert.Equal(t, "opaque-token", sessionID(resp))
	assert.Empty(t, sessionID(map[string]any{}))
}
