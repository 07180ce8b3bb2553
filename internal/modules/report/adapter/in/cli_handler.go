package in

import (
	"context"

	"swipescoop/internal/modules/report/dto"
	reportin "swipescoop/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Write(ctx context.Context) (dto.ReportOutput, error) {
	return h.usecase.Write(ctx, dto.WriteInput{})
}

func (h CLIHandler) Render(ctx context.Context) (dto.RenderOutput, error) {
	return h.usecase.Render(ctx)
}
