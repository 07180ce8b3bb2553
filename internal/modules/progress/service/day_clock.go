package service

import (
	"time"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/modules/progress/domain"
	"swipescoop/internal/platform/clock"
)

var epoch = time.Unix(0, 0).UTC()

// DayClock turns wall-clock reads into calendar days in one location.
type DayClock struct {
	clock  clock.Clock
	loc    *time.Location
	logger hclog.Logger
}

func NewDayClock(clk clock.Clock, loc *time.Location, logger hclog.Logger) *DayClock {
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &DayClock{clock: clk, loc: loc, logger: logger}
}

// Today never fails. A clock that reports no usable time pins the day to the
// Unix epoch and logs the degraded mode.
func (c *DayClock) Today() domain.DayKey {
	now := c.clock.Now()
	if now.IsZero() || now.Before(epoch) {
		c.logger.Warn("wall clock unavailable, falling back to epoch day", "reported", now)
		return domain.DayKeyOf(epoch)
	}
	return domain.DayKeyOf(now.In(c.loc))
}
