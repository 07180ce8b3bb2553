package in

import (
	"context"

	"swipescoop/internal/modules/report/dto"
)

type Usecase interface {
	Write(ctx context.Context, input dto.WriteInput) (dto.ReportOutput, error)
	Render(ctx context.Context) (dto.RenderOutput, error)
}
