package logx_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deal_factory/pkg/logx"
)

func TestSensitiveDataMaskerMask(t *testing.T) {
	rq := require.New(t)

	masker := logx.NewSensitiveDataMasker()

	testCases := []struct {
		name   string
		input  []byte
		output []byte
	}{
		{
			name:   "Password",
			input:  []byte(`{"hello":"world","password":"abc123"}`),
			output: []byte(`{"hello":"world","password":"[MASKED]"}`),
		},
		{
			name:   "Password capital letter",
			input:  []byte(`{"hello":"world","Password":"abc123"}`),
			output: []byte(`{"hello":"world","Password":"[MASKED]"}`),
		},
		{
			name:   "Access token",
			input:  []byte(`{"accessToken":"eyJhbGciOiJFUzI1NiIsInR5cC","refreshToken":"eyJhbGciOiJFUzI1NiIsInR5cCI6IkpXVCJ9"}`),
			output: []byte(`{"accessToken":"[MASKED]","refreshToken":"[MASKED]"}`),
		},
		{
			name:   "Email",
			input:  []byte(`{"profile": {"email": "john@doe.com"}, "customer_email": "jane@doe.com"}`),
			output: []byte(`{"profile": {"email": "[MASKED]"}, "customer_email": "[MASKED]"}`),
		},
		{
			name:   "Stripe keys",
			input:  []byte(`key=sk_test_51Abc123&secret=whsec_xyz789`),
			output: []byte(`key=[MASKED]&secret=[MASKED]`),
		},
		{
			name:   "Stripe signature header",
			input:  []byte("POST /stripe-webhook HTTP/1.1\r\nStripe-Signature: t=1,v1=abc\r\n"),
			output: []byte("POST /stripe-webhook HTTP/1.1\r\nStripe-Signature: [MASKED]\r\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			output := masker.Mask(tc.input)

			rq.Equal(tc.output, output, "%s vs %s", tc.output, output)
		})
	}
}
