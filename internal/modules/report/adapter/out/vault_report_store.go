package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"swipescoop/internal/modules/report/domain"
	reportout "swipescoop/internal/modules/report/port/out"
	"swipescoop/internal/platform/markdown"
)

var progressBlock = markdown.Block{
	Start: "<!-- swipescoop:progress:start -->",
	End:   "<!-- swipescoop:progress:end -->",
}

type reportMeta struct {
	SchemaVersion int      `yaml:"schema_version"`
	Updated       string   `yaml:"updated"`
	Streak        int      `yaml:"streak"`
	Badges        []string `yaml:"badges,omitempty"`
	WeekTotal     int      `yaml:"week_total"`
	Occupied      int      `yaml:"occupied"`
	Capacity      int      `yaml:"capacity"`
}

// VaultReportStore keeps a single markdown note up to date. The frontmatter
// and the managed block are regenerated; everything else in the note is left
// as the user wrote it.
type VaultReportStore struct {
	path string
}

func NewVaultReportStore(path string) reportout.ReportStore {
	return &VaultReportStore{path: path}
}

func (s *VaultReportStore) Save(_ context.Context, report domain.Report) (string, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	body := "# Reading progress\n"
	existing, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		var prior map[string]any
		body, err = markdown.DecodeFrontmatter(string(existing), &prior)
		if err != nil {
			return "", fmt.Errorf("read report note: %w", err)
		}
	case !os.IsNotExist(err):
		return "", fmt.Errorf("read report note: %w", err)
	}

	meta := reportMeta{
		SchemaVersion: domain.SchemaVersion,
		Updated:       report.Day,
		Streak:        report.Streak,
		Badges:        report.Badges,
		WeekTotal:     report.WeekTotal(),
		Occupied:      report.Occupied,
		Capacity:      report.Capacity,
	}
	rendered, err := markdown.RenderFrontmatter(meta, progressBlock.Replace(body, report.Body()))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(s.path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write report note: %w", err)
	}
	return s.path, nil
}
