package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)

	// phonePattern is tolerant of separators; candidates are filtered by
	// digit count and the year-range guard below. The character class has
	// no newline so a match never spans lines.
	phonePattern = regexp.MustCompile(`\+?\(?\d[\d \-().]{5,}\d`)

	// yearRangePattern rejects phone candidates that are date ranges such
	// as "2018 - 2022".
	yearRangePattern = regexp.MustCompile(`^(?:19|20)\d{2}\s*[-–—]\s*(?:19|20)\d{2}$`)

	urlPattern = regexp.MustCompile(`(?i)\bhttps?://[^\s<>()]+|\bwww\.[^\s<>()]+`)

	// bareLinkPattern matches professional-network domains mentioned
	// without a scheme or www prefix.
	bareLinkPattern = regexp.MustCompile(`(?i)\b(?:linkedin\.com|github\.com|gitlab\.com|stackoverflow\.com|behance\.net|dribbble\.com)(?:/[^\s<>()]*)?`)

	nameTokenPattern = regexp.MustCompile(`^[A-Z][A-Za-z'’.-]*$`)

	// addressPattern matches postal-style lines: a street number followed
	// by comma-separated place tokens.
	addressPattern = regexp.MustCompile(`\d{1,5}\s+[A-Za-z][A-Za-z0-9 .'-]*(?:,\s*[A-Za-z0-9 .'-]+)+`)
)

const minPhoneDigits = 7

// ExtractEmail returns the first email address in the header section, or
// failing that the first anywhere in the document.
func ExtractEmail(doc string, header *Section) types.Field[string] {
	if header != nil {
		if loc := emailPattern.FindStringIndex(header.Body); loc != nil {
			return types.FoundAt(header.Body[loc[0]:loc[1]], header.Start+loc[0], header.Start+loc[1])
		}
	}
	if loc := emailPattern.FindStringIndex(doc); loc != nil {
		return types.FoundAt(doc[loc[0]:loc[1]], loc[0], loc[1])
	}
	return types.Absent[string]()
}

// ExtractPhone returns the first phone number with at least seven digits,
// preferring matches in the header section.
func ExtractPhone(doc string, header *Section) types.Field[string] {
	if header != nil {
		if value, start, end, ok := findPhone(header.Body); ok {
			return types.FoundAt(value, header.Start+start, header.Start+end)
		}
	}
	if value, start, end, ok := findPhone(doc); ok {
		return types.FoundAt(value, start, end)
	}
	return types.Absent[string]()
}

func findPhone(text string) (string, int, int, bool) {
	for _, loc := range phonePattern.FindAllStringIndex(text, -1) {
		candidate := text[loc[0]:loc[1]]
		if countDigits(candidate) < minPhoneDigits {
			continue
		}
		if yearRangePattern.MatchString(strings.TrimSpace(candidate)) {
			continue
		}
		return candidate, loc[0], loc[1], true
	}
	return "", 0, 0, false
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

// ExtractLinks collects URLs and bare mentions of professional-network
// domains from the whole document, deduplicated with first-seen casing.
func ExtractLinks(doc string) types.Field[[]string] {
	var links []string
	seen := make(map[string]bool)
	var covered [][]int

	add := func(raw string) {
		link := strings.TrimRight(raw, ".,;:")
		key := strings.ToLower(link)
		if link == "" || seen[key] {
			return
		}
		seen[key] = true
		links = append(links, link)
	}

	for _, loc := range urlPattern.FindAllStringIndex(doc, -1) {
		covered = append(covered, loc)
		add(doc[loc[0]:loc[1]])
	}
	for _, loc := range bareLinkPattern.FindAllStringIndex(doc, -1) {
		if overlapsAny(loc, covered) {
			continue
		}
		add(doc[loc[0]:loc[1]])
	}

	if len(links) == 0 {
		return types.Absent[[]string]()
	}
	return types.Found(links)
}

func overlapsAny(loc []int, ranges [][]int) bool {
	for _, r := range ranges {
		if loc[0] < r[1] && r[0] < loc[1] {
			return true
		}
	}
	return false
}

// ExtractFullName returns the first non-empty header line made of two to
// four capitalized tokens that is not itself an email, phone, or URL. The
// name is never guessed from body sections.
func ExtractFullName(header *Section) types.Field[string] {
	if header == nil {
		return types.Absent[string]()
	}
	offset := 0
	for _, line := range strings.Split(header.Body, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !containsContact(trimmed) && looksLikeName(trimmed) {
			start := header.Start + offset + strings.Index(line, trimmed)
			return types.FoundAt(trimmed, start, start+len(trimmed))
		}
		offset += len(line) + 1
	}
	return types.Absent[string]()
}

func containsContact(line string) bool {
	if emailPattern.MatchString(line) || urlPattern.MatchString(line) || bareLinkPattern.MatchString(line) {
		return true
	}
	_, _, _, found := findPhone(line)
	return found
}

func looksLikeName(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) < 2 || len(tokens) > 4 {
		return false
	}
	for _, token := range tokens {
		token = strings.TrimRight(token, ",.")
		if !nameTokenPattern.MatchString(token) {
			return false
		}
	}
	return true
}

// ExtractAddress returns the first header line fragment matching the postal
// pattern. Absence is common and acceptable.
func ExtractAddress(header *Section) types.Field[string] {
	if header == nil {
		return types.Absent[string]()
	}
	offset := 0
	for _, line := range strings.Split(header.Body, "\n") {
		if loc := addressPattern.FindStringIndex(line); loc != nil {
			value := strings.TrimSpace(line[loc[0]:loc[1]])
			start := header.Start + offset + loc[0]
			return types.FoundAt(value, start, start+len(value))
		}
		offset += len(line) + 1
	}
	return types.Absent[string]()
}
