package textsource

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/jonathan/resume-parser/internal/types"
)

// extractPages renders PDF bytes to per-page plain text. A page whose
// content cannot be decoded contributes an empty string so page indices
// stay aligned with the source; a document the reader rejects outright is
// reported as unparseable.
func extractPages(data []byte) (doc *types.RawDocument) {
	// The pdf reader panics on some malformed files; treat that the same
	// as a parse error.
	defer func() {
		if r := recover(); r != nil {
			doc = unparseable(fmt.Sprintf("could not parse PDF: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return unparseable(fmt.Sprintf("could not parse PDF: %v", err))
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	return &types.RawDocument{Pages: pages, ByteLen: len(data)}
}

func unparseable(detail string) *types.RawDocument {
	return &types.RawDocument{
		Failure: &types.SourceFailure{Reason: types.ReasonUnparseableDocument, Detail: detail},
	}
}
