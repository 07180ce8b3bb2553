package in

import (
	"context"

	"swipescoop/internal/modules/deck/dto"
)

type Usecase interface {
	Load(ctx context.Context, input dto.LoadInput) (dto.DeckOutput, error)
	Categories() []string
}
