package port

import "context"

// ParseInput carries the data needed for document parsing.
type ParseInput struct {
	FileBytes   []byte
	ContentType string
}

// ParseOutput contains the raw result from a document-understanding model.
// Text is best-effort JSON: it may be fenced, contain comments, or have
// comma defects, and is repaired downstream before decoding.
type ParseOutput struct {
	Text       string
	ModelUsed  string
	PromptUsed string
}

// DocumentParser abstracts model-based document parsing.
type DocumentParser interface {
	Parse(ctx context.Context, input ParseInput) (*ParseOutput, error)
}
