package extraction

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// ExtractSummary returns the trimmed body of the summary/objective section.
// The summary is never synthesized from other fields; no matching section
// means an absent field.
func ExtractSummary(doc string, sections []Section) types.Field[string] {
	section := FindSection(sections, HeadingSummary)
	if section == nil {
		return types.Absent[string]()
	}
	trimmed := strings.TrimSpace(section.Body)
	if trimmed == "" {
		return types.Absent[string]()
	}
	// A span is reported only when the body sits verbatim at its recorded
	// offset (sub-heading absorption can reorder a body's first line).
	if section.Start <= len(doc) && strings.HasPrefix(doc[section.Start:], section.Body) {
		start := section.Start + strings.Index(section.Body, trimmed)
		return types.FoundAt(trimmed, start, start+len(trimmed))
	}
	return types.Found(trimmed)
}
