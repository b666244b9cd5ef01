package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStatus(t *testing.T) {
	tests := []struct {
		name    string
		result  StatusResult
		queried string
		want    string
	}{
		{
			name:    "blocked",
			result:  StatusResult{Status: "BLOCKED", IP: "1.2.3.4", Domain: "blocked-example.com"},
			queried: "blocked-example.com",
			want:    "🚫 `blocked-example.com` is *BLOCKED* (IP: `1.2.3.4`)",
		},
		{
			name:    "blocked lowercase status",
			result:  StatusResult{Status: "blocked", IP: "1.2.3.4", Domain: "a.com"},
			queried: "a.com",
			want:    "🚫 `a.com` is *BLOCKED* (IP: `1.2.3.4`)",
		},
		{
			name:    "allowed",
			result:  StatusResult{Status: "ALLOWED", IP: "5.6.7.8", Domain: "a.com"},
			queried: "a.com",
			want:    "✅ `a.com` is *ALLOWED* (IP: `5.6.7.8`)",
		},
		{
			name:    "unknown status renders allowed",
			result:  StatusResult{Status: "weird", Domain: "a.com"},
			queried: "a.com",
			want:    "✅ `a.com` is *ALLOWED* (IP: `N/A`)",
		},
		{
			name:    "missing status and ip",
			result:  StatusResult{},
			queried: "a.com",
			want:    "✅ `a.com` is *ALLOWED* (IP: `N/A`)",
		},
		{
			name:    "echoed domain preferred over queried",
			result:  StatusResult{Status: "ALLOWED", IP: "5.6.7.8", Domain: "www.a.com"},
			queried: "a.com",
			want:    "✅ `www.a.com` is *ALLOWED* (IP: `5.6.7.8`)",
		},
		{
			name:    "error",
			result:  StatusResult{Err: "connection timed out"},
			queried: "down-example.com",
			want:    "❌ *Error checking* `down-example.com`:\nconnection timed out",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatStatus(tc.result, tc.queried))
		})
	}
}
