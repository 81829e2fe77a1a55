package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const monthNames = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:t|tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`

const dateToken = `(?:(?:` + monthNames + `)\.?\s+)?(?:19|20)\d{2}|\d{1,2}/(?:19|20)\d{2}`

var (
	// dateRangePattern captures two date-like tokens separated by a dash or
	// "to", where the end may be an open marker like "present".
	dateRangePattern = regexp.MustCompile(`(?i)(` + dateToken + `)\s*(?:[-–—]|to)\s*(` + dateToken + `|present|current|now)`)

	singleDatePattern = regexp.MustCompile(`(?i)(?:(?:` + monthNames + `)\.?\s+)?(?:19|20)\d{2}`)

	bulletMarkerPattern = regexp.MustCompile(`^[•●▪◦·*]\s*|^-\s+`)

	skillSplitPattern = regexp.MustCompile(`[,;\n|•●▪◦·]`)
)

// entrySeparators split an entry's first line into organization and
// title/degree, tried in order.
var entrySeparators = []string{"—", "|", " - ", "·", ","}

// ExtractWorkExperience parses the experience section into ordered entries.
// Entry order is whatever order the résumé presents; the extractor does not
// reorder.
func ExtractWorkExperience(sections []Section) types.Field[[]types.WorkExperienceEntry] {
	section := FindSection(sections, HeadingExperience)
	if section == nil {
		return types.Absent[[]types.WorkExperienceEntry]()
	}
	var entries []types.WorkExperienceEntry
	for _, block := range splitEntries(section.Body) {
		org, title, start, end, desc := parseEntry(block)
		if org == "" && title == "" {
			continue
		}
		entries = append(entries, types.WorkExperienceEntry{
			Organization: org,
			Title:        title,
			StartDate:    start,
			EndDate:      end,
			Description:  desc,
		})
	}
	if len(entries) == 0 {
		return types.Absent[[]types.WorkExperienceEntry]()
	}
	return types.Found(entries)
}

// ExtractEducation parses the education section into ordered entries.
func ExtractEducation(sections []Section) types.Field[[]types.EducationEntry] {
	section := FindSection(sections, HeadingEducation)
	if section == nil {
		return types.Absent[[]types.EducationEntry]()
	}
	var entries []types.EducationEntry
	for _, block := range splitEntries(section.Body) {
		org, degree, start, end, desc := parseEntry(block)
		if org == "" && degree == "" {
			continue
		}
		entries = append(entries, types.EducationEntry{
			Organization: org,
			Degree:       degree,
			StartDate:    start,
			EndDate:      end,
			Description:  desc,
		})
	}
	if len(entries) == 0 {
		return types.Absent[[]types.EducationEntry]()
	}
	return types.Found(entries)
}

// ExtractCertifications parses the certifications section; each entry is a
// name with an optional date.
func ExtractCertifications(sections []Section) types.Field[[]types.CertificationEntry] {
	section := FindSection(sections, HeadingCertifications)
	if section == nil {
		return types.Absent[[]types.CertificationEntry]()
	}
	var entries []types.CertificationEntry
	for _, block := range splitEntries(section.Body) {
		line := strings.TrimSpace(strings.SplitN(block, "\n", 2)[0])
		if line == "" {
			continue
		}
		var date string
		if loc := singleDatePattern.FindStringIndex(line); loc != nil {
			date = line[loc[0]:loc[1]]
			line = trimSeparators(line[:loc[0]] + line[loc[1]:])
		}
		if line == "" {
			continue
		}
		entries = append(entries, types.CertificationEntry{Name: line, Date: date})
	}
	if len(entries) == 0 {
		return types.Absent[[]types.CertificationEntry]()
	}
	return types.Found(entries)
}

// ExtractSkills tokenizes the skills section body on commas, bullets, and
// newlines into a deduplicated list of trimmed strings, first appearance
// order preserved.
func ExtractSkills(sections []Section) types.Field[[]string] {
	section := FindSection(sections, HeadingSkills)
	if section == nil {
		return types.Absent[[]string]()
	}
	var skills []string
	seen := make(map[string]bool)
	for _, token := range skillSplitPattern.Split(section.Body, -1) {
		token = strings.TrimSpace(bulletMarkerPattern.ReplaceAllString(strings.TrimSpace(token), ""))
		// "Languages: Go" style category prefixes contribute the skill only.
		if idx := strings.Index(token, ":"); idx >= 0 {
			token = strings.TrimSpace(token[idx+1:])
		}
		token = strings.TrimRight(token, ".")
		key := strings.ToLower(token)
		if token == "" || seen[key] {
			continue
		}
		seen[key] = true
		skills = append(skills, token)
	}
	if len(skills) == 0 {
		return types.Absent[[]string]()
	}
	return types.Found(skills)
}

// splitEntries splits a section body into entry blocks at blank lines. When
// every non-blank line is bullet-marked the bullets themselves delimit
// entries; otherwise bullet lines are detail lines of the entry above.
func splitEntries(body string) []string {
	lines := strings.Split(body, "\n")

	allBulleted := true
	nonBlank := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		nonBlank++
		if !bulletMarkerPattern.MatchString(trimmed) {
			allBulleted = false
		}
	}
	if nonBlank == 0 {
		return nil
	}

	var blocks []string
	var block []string
	flush := func() {
		if len(block) > 0 {
			blocks = append(blocks, strings.Join(block, "\n"))
			block = nil
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		if allBulleted {
			flush()
			block = append(block, bulletMarkerPattern.ReplaceAllString(trimmed, ""))
			continue
		}
		block = append(block, trimmed)
	}
	flush()
	return blocks
}

// parseEntry parses an entry block into an organization/title first line,
// an optional date range found anywhere in the block, and the unparsed
// remainder as description.
func parseEntry(block string) (org, title, start, end, desc string) {
	lines := strings.Split(block, "\n")
	first := lines[0]
	rest := lines[1:]

	if m := dateRangePattern.FindStringSubmatchIndex(block); m != nil {
		start = strings.TrimSpace(block[m[2]:m[3]])
		end = strings.TrimSpace(block[m[4]:m[5]])
		// Remove the range from whichever line holds it.
		if m[0] < len(first) {
			cut := m[1]
			if cut > len(first) {
				cut = len(first)
			}
			first = first[:m[0]] + first[cut:]
		} else {
			offset := len(first) + 1
			for i, line := range rest {
				if m[0] < offset+len(line)+1 {
					s, e := m[0]-offset, m[1]-offset
					if s < 0 {
						s = 0
					}
					if e > len(line) {
						e = len(line)
					}
					rest[i] = strings.TrimSpace(line[:s] + line[e:])
					break
				}
				offset += len(line) + 1
			}
		}
	}

	first = trimSeparators(first)
	org = first
	for _, sep := range entrySeparators {
		if idx := strings.Index(first, sep); idx >= 0 {
			org = trimSeparators(first[:idx])
			title = trimSeparators(first[idx+len(sep):])
			break
		}
	}

	var descLines []string
	for _, line := range rest {
		if line = strings.TrimSpace(line); line != "" {
			descLines = append(descLines, line)
		}
	}
	desc = strings.Join(descLines, "\n")
	return org, title, start, end, desc
}

// trimSeparators trims whitespace and leftover separator punctuation from
// the ends of a fragment after date-range removal.
func trimSeparators(s string) string {
	return strings.Trim(s, " \t,–—-|·()")
}
