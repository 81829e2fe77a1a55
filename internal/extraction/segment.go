package extraction

import (
	"strings"
	"unicode"
)

// Canonical heading keys produced by the segmenter. HeadingHeader labels the
// implicit section holding everything before the first detected heading;
// the rest map recognized heading vocabulary to the extractor that consumes
// the section.
const (
	HeadingHeader         = "header"
	HeadingExperience     = "experience"
	HeadingEducation      = "education"
	HeadingSkills         = "skills"
	HeadingCertifications = "certifications"
	HeadingSummary        = "summary"
	HeadingLinks          = "links"
)

// headingVocabulary maps known heading phrases (lowercase, trailing colon
// stripped) to their canonical key.
var headingVocabulary = map[string]string{
	"experience":              HeadingExperience,
	"work experience":         HeadingExperience,
	"work history":            HeadingExperience,
	"employment":              HeadingExperience,
	"employment history":      HeadingExperience,
	"professional experience": HeadingExperience,
	"career history":          HeadingExperience,

	"education":           HeadingEducation,
	"academic background": HeadingEducation,
	"academics":           HeadingEducation,

	"skills":            HeadingSkills,
	"technical skills":  HeadingSkills,
	"core competencies": HeadingSkills,
	"technologies":      HeadingSkills,

	"certifications":            HeadingCertifications,
	"certificates":              HeadingCertifications,
	"licenses":                  HeadingCertifications,
	"licenses & certifications": HeadingCertifications,

	"summary":              HeadingSummary,
	"professional summary": HeadingSummary,
	"objective":            HeadingSummary,
	"career objective":     HeadingSummary,
	"profile":              HeadingSummary,
	"about":                HeadingSummary,
	"about me":             HeadingSummary,

	"links":               HeadingLinks,
	"contact":             HeadingLinks,
	"contact information": HeadingLinks,
	"social":              HeadingLinks,
}

// maxHeadingWords bounds the caps-line and colon-suffix heading rules so
// that prose lines are never mistaken for headings.
const maxHeadingWords = 6

// Section is a contiguous labeled block of résumé text. Sections are
// non-overlapping and ordered by position in the source; Canon is the
// canonical vocabulary key, or empty for a recognized heading outside the
// vocabulary. Start is the byte offset of the body within the normalized
// document text, used to report source spans.
type Section struct {
	Heading    string
	Canon      string
	Body       string
	OrderIndex int
	Start      int
}

// Normalize canonicalizes line endings and turns page-break markers into
// line breaks. Segmentation and all span offsets are relative to the
// normalized text.
func Normalize(text string) string {
	return strings.NewReplacer("\r\n", "\n", "\r", "\n", PageBreak, "\n").Replace(text)
}

type sectionBuilder struct {
	heading string
	canon   string
	start   int
	lines   []string
	hasText bool
}

func (b *sectionBuilder) build(orderIndex int) Section {
	return Section{
		Heading:    b.heading,
		Canon:      b.canon,
		Body:       strings.Join(b.lines, "\n"),
		OrderIndex: orderIndex,
		Start:      b.start,
	}
}

// Segment splits document text into an ordered sequence of sections using
// line-by-line heading detection. Heading rules apply in priority order:
// vocabulary match, then all-caps short line, then colon-suffixed short
// line. Text before the first detected heading becomes the implicit
// "header" section. Segmentation is a pure function of its input; a
// document with no detectable headings yields a single header section.
func Segment(text string) []Section {
	norm := Normalize(text)

	var sections []Section
	cur := &sectionBuilder{canon: HeadingHeader}

	offset := 0
	for _, line := range strings.Split(norm, "\n") {
		trimmed := strings.TrimSpace(line)
		if canon, ok := classifyHeading(trimmed); ok {
			next := &sectionBuilder{heading: trimmed, canon: canon, start: offset + len(line) + 1}
			switch {
			case cur.canon == HeadingHeader && cur.heading == "" && !cur.hasText:
				// Document opens with a heading; there is no header content.
			case !cur.hasText && cur.heading != "":
				// Two heading candidates with nothing between them: the
				// earlier is a sub-heading absorbed into this section's body.
				next.lines = append(next.lines, cur.heading)
				next.hasText = true
			default:
				sections = append(sections, cur.build(len(sections)))
			}
			cur = next
		} else {
			cur.lines = append(cur.lines, line)
			if trimmed != "" {
				cur.hasText = true
			}
		}
		offset += len(line) + 1
	}
	sections = append(sections, cur.build(len(sections)))

	return sections
}

// FindSection returns the first section with the given canonical key, or nil.
func FindSection(sections []Section, canon string) *Section {
	for i := range sections {
		if sections[i].Canon == canon {
			return &sections[i]
		}
	}
	return nil
}

// classifyHeading reports whether a trimmed line is a heading candidate and
// returns its canonical vocabulary key (empty for headings outside the
// vocabulary).
func classifyHeading(line string) (string, bool) {
	if line == "" {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(strings.TrimSuffix(line, ":")))
	if canon, ok := headingVocabulary[key]; ok {
		return canon, true
	}
	if len(strings.Fields(line)) > maxHeadingWords {
		return "", false
	}
	if isAllCaps(line) || strings.HasSuffix(line, ":") {
		return headingVocabulary[key], true
	}
	return "", false
}

// isAllCaps reports whether the line contains at least one letter and no
// lowercase letters.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
