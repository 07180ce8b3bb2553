package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"swipescoop/internal/modules/deck/domain"
	deckout "swipescoop/internal/modules/deck/port/out"
	apperrors "swipescoop/internal/platform/errors"
	"swipescoop/internal/platform/slug"
)

type articleRecord struct {
	Title       string `yaml:"title"`
	Source      string `yaml:"source"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

type deckFile struct {
	Categories map[string][]articleRecord `yaml:"categories"`
}

// YAMLSource reads headlines from a local deck file:
//
//	categories:
//	  technology:
//	    - title: Go 1.25 released
//	      source: The Go Blog
//	      url: https://go.dev/blog/go1.25
//
// The file is read on every Fetch so edits show up on the next reload.
type YAMLSource struct {
	path string
}

func NewYAMLSource(path string) deckout.ArticleSource {
	return &YAMLSource{path: path}
}

func (s *YAMLSource) Fetch(ctx context.Context, category string) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: deck file %s", apperrors.ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("read deck: %w", err)
	}
	file := deckFile{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	var records []articleRecord
	for name, entries := range file.Categories {
		if slug.Make(name, "") == category {
			records = append(records, entries...)
		}
	}
	articles := make([]domain.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, domain.Article{
			Title:       r.Title,
			SourceName:  r.Source,
			Description: r.Description,
			URL:         r.URL,
		})
	}
	return articles, nil
}
