package vipps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizedAmount(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want *int64
	}{
		{
			name: "nested summary object",
			raw:  `{"state":"AUTHORIZED","summary":{"authorizedAmount":{"value":10000,"currency":"DKK"}}}`,
			want: ptr(int64(10000)),
		},
		{
			name: "flat amount object",
			raw:  `{"state":"AUTHORIZED","amount":{"value":4900,"currency":"DKK"}}`,
			want: ptr(int64(4900)),
		},
		{
			name: "flat scalar amount",
			raw:  `{"state":"AUTHORIZED","amount":250}`,
			want: ptr(int64(250)),
		},
		{
			name: "summary wins over amount",
			raw:  `{"summary":{"authorizedAmount":{"value":100}},"amount":{"value":999}}`,
			want: ptr(int64(100)),
		},
		{
			name: "amount object wins over nothing in summary",
			raw:  `{"summary":{},"amount":{"value":300}}`,
			want: ptr(int64(300)),
		},
		{
			name: "no amount anywhere",
			raw:  `{"state":"CREATED"}`,
			want: nil,
		},
		{
			name: "amount object without value",
			raw:  `{"amount":{"currency":"DKK"}}`,
			want: nil,
		},
		{
			name: "invalid json",
			raw:  `{not json`,
			want: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := authorizedAmount([]byte(tc.raw))
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.want, *got)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
