package markdown

import "strings"

// Block is a generated region of a note delimited by two marker lines.
// Text outside the markers belongs to the user and is never rewritten.
type Block struct {
	Start string
	End   string
}

// Replace swaps the block's current content for generated, appending the
// block when body does not contain it yet.
func (b Block) Replace(body, generated string) string {
	start := strings.Index(body, b.Start)
	end := strings.Index(body, b.End)
	block := b.Start + "\n" + strings.TrimRight(generated, "\n") + "\n" + b.End

	if start >= 0 && end > start {
		end += len(b.End)
		return body[:start] + block + body[end:]
	}

	if strings.TrimSpace(body) == "" {
		return block + "\n"
	}
	if strings.HasSuffix(body, "\n") {
		return body + "\n" + block + "\n"
	}
	return body + "\n\n" + block + "\n"
}
