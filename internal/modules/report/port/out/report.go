package out

import (
	"context"

	"swipescoop/internal/modules/report/domain"
)

type ReportStore interface {
	// Save writes the report and returns where it went.
	Save(ctx context.Context, report domain.Report) (string, error)
}
