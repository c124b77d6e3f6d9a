package parser

import (
	"regexp"
	"strings"
)

// Textual repairs applied to model output. Each is a single best-effort pass;
// SanitizeJSON never loops, so pathological input fails decisively at decode
// time instead of spinning here.
var (
	lineCommentRe   = regexp.MustCompile(`//[^\n]*`)
	blockCommentRe  = regexp.MustCompile(`(?s)/\*.*?\*/`)
	trailingArrayRe = regexp.MustCompile(`,\s*]`)
	trailingObjRe   = regexp.MustCompile(`,\s*}`)
	missingCommaRe  = regexp.MustCompile(`}\s*{`)
)

// SanitizeJSON repairs common defects in JSON-like text returned by a
// document-understanding model: markdown fencing, comments, trailing commas,
// and missing commas between adjacent objects. The result is intended to be
// valid JSON but is not guaranteed to parse; the caller decides what a
// decode failure means.
func SanitizeJSON(text string) string {
	text = stripFences(text)
	text = lineCommentRe.ReplaceAllString(text, "")
	text = blockCommentRe.ReplaceAllString(text, "")
	text = trailingArrayRe.ReplaceAllString(text, "]")
	text = trailingObjRe.ReplaceAllString(text, "}")
	text = missingCommaRe.ReplaceAllString(text, "},{")
	return strings.TrimSpace(text)
}

// stripFences takes the content of the first fenced code block when one is
// present, preferring a ```json fence.
func stripFences(text string) string {
	if idx := strings.Index(text, "```json"); idx != -1 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	if idx := strings.Index(text, "```"); idx != -1 {
		rest := text[idx+len("```"):]
		if end := strings.Index(rest, "```"); end != -1 {
			rest = rest[:end]
		}
		return strings.TrimSpace(rest)
	}
	return text
}
