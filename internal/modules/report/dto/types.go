package dto

type WriteInput struct{}

type ReportOutput struct {
	Path      string
	Day       string
	Streak    int
	WeekTotal int
	Occupied  int
}

type RenderOutput struct {
	StreakLine string
	Chart      string
	Grid       string
	Summary    string
}
