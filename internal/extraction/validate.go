// Package extraction implements the résumé extraction core: document
// validation, section segmentation, the per-field heuristic extractors, and
// the result assembler. Every function in this package is pure; the pipeline
// runs extractors concurrently without locking because all inputs and
// outputs are immutable values.
package extraction

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

// Readability thresholds. A document whose non-whitespace character count
// falls under either bound is classified as image-only (a scanned résumé
// with no extractable text). The floor is deliberately low so that short
// one-page résumés still pass; the per-page average catches multi-page
// scans that leak a few stray characters per page.
const (
	MinTotalChars   = 100
	MinCharsPerPage = 20
)

// PageBreak separates pages in the concatenated document text. The segmenter
// treats it as a line break, so trailing and leading words of adjacent pages
// are never merged; it never appears in extractor output.
const PageBreak = "\f"

// VerdictKind classifies a document's readability.
type VerdictKind int

const (
	// VerdictUnreadable means the fetch or parse collaborator failed.
	VerdictUnreadable VerdictKind = iota
	// VerdictImageOnly means the document carries too little extractable
	// text to be machine-readable (likely a scanned image).
	VerdictImageOnly
	// VerdictText means the document is a readable text document.
	VerdictText
)

// Verdict is the validator's classification of a raw document. Text is set
// only for VerdictText; Reason and Detail only for the other kinds. Reason
// is one of the stable rejection codes in the types package.
type Verdict struct {
	Kind   VerdictKind
	Text   string
	Reason string
	Detail string
}

// Validate classifies a raw document as text, image-only, or unreadable.
// Classification is pure and computed once per request: a collaborator
// failure short-circuits, otherwise the non-whitespace character count
// across all pages decides. Thresholding uses the overall average rather
// than per-page strictness, so a mostly-text résumé with one blank scanned
// page still classifies as a text document.
func Validate(raw *types.RawDocument) Verdict {
	if raw.Failure != nil {
		reason := raw.Failure.Reason
		if reason == "" {
			reason = types.ReasonFetchFailure
		}
		return Verdict{
			Kind:   VerdictUnreadable,
			Reason: reason,
			Detail: raw.Failure.Detail,
		}
	}

	total := 0
	for _, page := range raw.Pages {
		total += countNonSpace(page)
	}

	pageCount := len(raw.Pages)
	if pageCount == 0 || total < MinTotalChars || total < MinCharsPerPage*pageCount {
		return Verdict{
			Kind:   VerdictImageOnly,
			Reason: types.ReasonNotTextExtractable,
			Detail: fmt.Sprintf(
				"document is not text-extractable: %d characters across %d pages (it may be a scanned image)",
				total, pageCount),
		}
	}

	return Verdict{
		Kind: VerdictText,
		Text: strings.Join(raw.Pages, PageBreak),
	}
}

// countNonSpace counts the non-whitespace runes in s.
func countNonSpace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
