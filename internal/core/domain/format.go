package domain

import (
	"fmt"
	"strings"
)

const ipUnavailable = "N/A"

// FormatStatus renders one lookup result as a single report line. Only a
// literal BLOCKED status (case-insensitive) gets the blocked marker; any
// other status renders as allowed.
func FormatStatus(result StatusResult, queried string) string {
	if result.Err != "" {
		return fmt.Sprintf("❌ *Error checking* `%s`:\n%s", queried, result.Err)
	}

	name := result.Domain
	if name == "" {
		name = queried
	}

	ip := result.IP
	if ip == "" {
		ip = ipUnavailable
	}

	if strings.EqualFold(result.Status, StatusBlocked) {
		return fmt.Sprintf("🚫 `%s` is *BLOCKED* (IP: `%s`)", name, ip)
	}

	return fmt.Sprintf("✅ `%s` is *ALLOWED* (IP: `%s`)", name, ip)
}
