package in

import (
	"context"

	progressdto "swipescoop/internal/modules/progress/dto"
	progressin "swipescoop/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (progressdto.StartOutput, error) {
	return h.usecase.OnAppStart(ctx)
}

func (h CLIHandler) Accept(ctx context.Context, itemID, title, sourceName, url, category string) (progressdto.AcceptOutput, error) {
	return h.usecase.OnItemAccepted(ctx, progressdto.AcceptInput{
		ItemID:     itemID,
		Title:      title,
		SourceName: sourceName,
		URL:        url,
		Category:   category,
	})
}

func (h CLIHandler) Reject(ctx context.Context, itemID, title string) error {
	return h.usecase.OnItemRejected(ctx, progressdto.RejectInput{ItemID: itemID, Title: title})
}

func (h CLIHandler) ResetStreak(ctx context.Context) (progressdto.StreakOutput, error) {
	return h.usecase.ResetStreak(ctx)
}

func (h CLIHandler) ResetAll(ctx context.Context) (progressdto.SnapshotOutput, error) {
	return h.usecase.ResetAll(ctx)
}

func (h CLIHandler) Snapshot(ctx context.Context) (progressdto.SnapshotOutput, error) {
	return h.usecase.Snapshot(ctx)
}
