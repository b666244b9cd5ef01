package port

import (
	"context"

	"github.com/918apps/indiwtfcheck/internal/core/domain"
)

type StatusChecker interface {
	// Check queries the status API for a single domain. Failures surface
	// inside the result, never as an error.
	Check(ctx context.Context, name string) domain.StatusResult
}
