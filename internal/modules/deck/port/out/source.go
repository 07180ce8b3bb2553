package out

import (
	"context"

	"swipescoop/internal/modules/deck/domain"
)

type ArticleSource interface {
	Fetch(ctx context.Context, category string) ([]domain.Article, error)
}
