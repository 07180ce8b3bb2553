package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"

	"swipescoop/internal/modules/deck/domain"
	"swipescoop/internal/modules/deck/dto"
	deckin "swipescoop/internal/modules/deck/port/in"
	deckout "swipescoop/internal/modules/deck/port/out"
	apperrors "swipescoop/internal/platform/errors"
	"swipescoop/internal/platform/id"
	"swipescoop/internal/platform/slug"
)

const offlineNotice = "Failed to load articles. Using offline mode."

type Interactor struct {
	source     deckout.ArticleSource
	ids        id.Generator
	categories []string
	logger     hclog.Logger
}

func NewInteractor(source deckout.ArticleSource, ids id.Generator, categories []string, logger hclog.Logger) deckin.Usecase {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	normalized := make([]string, 0, len(categories))
	seen := map[string]bool{}
	for _, c := range categories {
		c = slug.Make(c, "")
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		normalized = append(normalized, c)
	}
	return &Interactor{source: source, ids: ids, categories: normalized, logger: logger}
}

func (i *Interactor) Categories() []string {
	return append([]string(nil), i.categories...)
}

// Load returns the deck for a category. An empty category selects the first
// configured one. A source failure is not an error: the caller gets the
// offline deck and a notice.
func (i *Interactor) Load(ctx context.Context, input dto.LoadInput) (dto.DeckOutput, error) {
	category, err := i.resolve(input.Category)
	if err != nil {
		return dto.DeckOutput{}, err
	}
	var deck domain.Deck
	articles, err := i.source.Fetch(ctx, category)
	if err != nil {
		i.logger.Warn("article source unavailable, using offline deck", "category", category, "error", err)
		deck = domain.OfflineDeck(category)
	} else {
		deck = domain.NewDeck(category, articles)
	}

	out := dto.DeckOutput{Category: deck.Category, Offline: deck.Offline, Articles: make([]dto.ArticleOutput, 0, len(deck.Articles))}
	if deck.Offline {
		out.Notice = offlineNotice
	}
	for _, a := range deck.Articles {
		if a.ID == "" {
			a.ID = i.itemID(a)
		}
		out.Articles = append(out.Articles, dto.ArticleOutput{
			ID:          a.ID,
			Title:       a.Title,
			SourceName:  a.SourceName,
			Description: a.Description,
			URL:         a.URL,
			Category:    a.Category,
		})
	}
	return out, nil
}

func (i *Interactor) resolve(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		if len(i.categories) == 0 {
			return "", fmt.Errorf("%w: no categories configured", apperrors.ErrInvalidInput)
		}
		return i.categories[0], nil
	}
	category := slug.Make(raw, "")
	for _, c := range i.categories {
		if c == category {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", apperrors.ErrInvalidInput, raw)
}

// itemID prefers the article link so the same headline keeps its id across
// reloads.
func (i *Interactor) itemID(a domain.Article) string {
	if url := strings.TrimSpace(a.URL); url != "" {
		return url
	}
	if i.ids == nil {
		return ""
	}
	return i.ids.New()
}
