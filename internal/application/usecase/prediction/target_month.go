package prediction

import (
	"time"

	domainerror "github.com/wealth-tracker/backend/internal/domain/error"
)

// parseTargetMonth parses a YYYY-MM month identifier.
func parseTargetMonth(month string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, domainerror.NewPredictionError(
			domainerror.ErrCodeInvalidTargetMonth,
			"target month must be in YYYY-MM format",
			domainerror.ErrInvalidTargetMonth,
		)
	}
	return t.Year(), t.Month(), nil
}
