package dto

type LoadInput struct {
	Category string
}

type ArticleOutput struct {
	ID          string
	Title       string
	SourceName  string
	Description string
	URL         string
	Category    string
}

type DeckOutput struct {
	Category string
	Articles []ArticleOutput
	Offline  bool
	// Notice is a user-facing message set when the deck fell back to offline mode.
	Notice string
}
