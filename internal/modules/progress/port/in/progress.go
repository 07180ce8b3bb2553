package in

import (
	"context"

	"swipescoop/internal/modules/progress/dto"
)

type Usecase interface {
	OnAppStart(ctx context.Context) (dto.StartOutput, error)
	OnItemAccepted(ctx context.Context, input dto.AcceptInput) (dto.AcceptOutput, error)
	OnItemRejected(ctx context.Context, input dto.RejectInput) error
	ResetStreak(ctx context.Context) (dto.StreakOutput, error)
	ResetAll(ctx context.Context) (dto.SnapshotOutput, error)
	Snapshot(ctx context.Context) (dto.SnapshotOutput, error)
}
