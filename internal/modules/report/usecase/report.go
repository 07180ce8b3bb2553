package usecase

import (
	"context"
	"fmt"

	progressin "swipescoop/internal/modules/progress/port/in"
	"swipescoop/internal/modules/report/domain"
	"swipescoop/internal/modules/report/dto"
	reportin "swipescoop/internal/modules/report/port/in"
	reportout "swipescoop/internal/modules/report/port/out"
)

type Interactor struct {
	progress progressin.Usecase
	store    reportout.ReportStore
}

func NewInteractor(progress progressin.Usecase, store reportout.ReportStore) reportin.Usecase {
	return &Interactor{progress: progress, store: store}
}

func (i *Interactor) Write(ctx context.Context, _ dto.WriteInput) (dto.ReportOutput, error) {
	report, err := i.current(ctx)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	path, err := i.store.Save(ctx, report)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	return dto.ReportOutput{
		Path:      path,
		Day:       report.Day,
		Streak:    report.Streak,
		WeekTotal: report.WeekTotal(),
		Occupied:  report.Occupied,
	}, nil
}

func (i *Interactor) Render(ctx context.Context) (dto.RenderOutput, error) {
	report, err := i.current(ctx)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	return dto.RenderOutput{
		StreakLine: domain.StreakLine(report.Streak, report.Badges),
		Chart:      domain.RenderWindowChart(report.Window),
		Grid:       domain.RenderGrid(report.Cells),
		Summary:    fmt.Sprintf("%d/%d cells filled", report.Occupied, report.Capacity),
	}, nil
}

func (i *Interactor) current(ctx context.Context) (domain.Report, error) {
	snap, err := i.progress.Snapshot(ctx)
	if err != nil {
		return domain.Report{}, err
	}
	cells := make([]domain.Cell, 0, len(snap.Cells))
	for _, c := range snap.Cells {
		cells = append(cells, domain.Cell{Label: c.Label, ColorTag: c.ColorTag, Empty: c.Empty})
	}
	return domain.Report{
		Day:      snap.Today,
		Streak:   snap.Streak,
		Badges:   snap.Badges,
		Window:   snap.Window,
		Occupied: snap.Occupied,
		Capacity: snap.Capacity,
		Cells:    cells,
	}, nil
}
