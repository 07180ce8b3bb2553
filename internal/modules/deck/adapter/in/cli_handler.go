package in

import (
	"context"

	"swipescoop/internal/modules/deck/dto"
	deckin "swipescoop/internal/modules/deck/port/in"
)

type CLIHandler struct {
	usecase deckin.Usecase
}

func NewCLIHandler(usecase deckin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context, category string) (dto.DeckOutput, error) {
	return h.usecase.Load(ctx, dto.LoadInput{Category: category})
}

func (h CLIHandler) Categories() []string {
	return h.usecase.Categories()
}
