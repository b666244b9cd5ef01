package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "already canonical",
			raw:  "example.com",
			want: "example.com",
		},
		{
			name: "mixed case",
			raw:  "Example.COM",
			want: "example.com",
		},
		{
			name: "trailing dot",
			raw:  "example.com.",
			want: "example.com",
		},
		{
			name: "surrounding whitespace",
			raw:  "  example.com ",
			want: "example.com",
		},
		{
			name: "idn punycoded",
			raw:  "münchen.de",
			want: "xn--mnchen-3ya.de",
		},
		{
			name: "empty",
			raw:  "   ",
			want: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeDomain(tc.raw))
		})
	}
}
