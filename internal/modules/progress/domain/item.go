package domain

import (
	"strings"

	"swipescoop/internal/platform/slug"
)

const untitledLabel = "untitled"

type Category string

const CategoryGeneral Category = "general"

func NormalizeCategory(raw string) Category {
	return Category(slug.Make(raw, string(CategoryGeneral)))
}

// ColorTag gives every category its own tag.
func (c Category) ColorTag() ColorTag {
	if c == "" {
		return ColorTagGeneral
	}
	return ColorTag(c)
}

// AcceptedItem is the engine's view of a headline the user kept. It is built
// once at the UI boundary so feed payload shapes never reach the engine.
type AcceptedItem struct {
	ID         string
	Title      string
	SourceName string
	URL        string
	Category   Category
}

func (a AcceptedItem) Label() string {
	label := strings.Join(strings.Fields(a.Title), " ")
	if label == "" {
		return untitledLabel
	}
	return label
}

func (a AcceptedItem) Cell() Cell {
	return Cell{Label: a.Label(), ColorTag: a.Category.ColorTag(), ItemID: a.ID}
}
