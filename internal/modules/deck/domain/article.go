package domain

import "strings"

// MaxArticlesPerCategory caps a deck; sources may return more.
const MaxArticlesPerCategory = 10

const (
	OfflineTitle       = "Offline Mode"
	OfflineSourceName  = "SwipeScoop"
	OfflineDescription = "Check your connection."
)

type Article struct {
	ID          string
	Title       string
	SourceName  string
	Description string
	URL         string
	Category    string
}

type Deck struct {
	Category string
	Articles []Article
	Offline  bool
}

// OfflineDeck is shown in place of a deck that could not be loaded.
func OfflineDeck(category string) Deck {
	return Deck{
		Category: category,
		Offline:  true,
		Articles: []Article{{
			ID:          "offline",
			Title:       OfflineTitle,
			SourceName:  OfflineSourceName,
			Description: OfflineDescription,
			Category:    category,
		}},
	}
}

// NewDeck keeps the first MaxArticlesPerCategory articles and drops entries
// that have neither a title nor a link.
func NewDeck(category string, articles []Article) Deck {
	kept := make([]Article, 0, MaxArticlesPerCategory)
	for _, a := range articles {
		if len(kept) == MaxArticlesPerCategory {
			break
		}
		if strings.TrimSpace(a.Title) == "" && strings.TrimSpace(a.URL) == "" {
			continue
		}
		a.Category = category
		kept = append(kept, a)
	}
	return Deck{Category: category, Articles: kept}
}
