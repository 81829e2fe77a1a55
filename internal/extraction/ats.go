package extraction

import (
	"regexp"
	"strings"
)

// ATSReport lists which essential ATS fields are detectable in a résumé's
// text. Fields always carries every key, so consumers see a fixed shape.
type ATSReport struct {
	ATSCompliant bool            `json:"ats_compliant"`
	Fields       map[string]bool `json:"fields"`
}

var (
	educationKeywords  = []string{"education", "bachelor", "master", "university", "degree"}
	experienceKeywords = []string{"experience", "employment", "work history", "professional experience"}
	locationKeywords   = []string{"address", "location", "city", "country", "state", "province", "street", "avenue", "road"}
	interestsKeywords  = []string{"interests", "hobbies", "activities", "passions", "likes"}
	volunteerKeywords  = []string{"volunteer", "volunteering", "community service", "charity", "non-profit", "social work"}

	atsNameToken     = regexp.MustCompile(`[A-Z][a-z]+`)
	nonWordOrSpace   = regexp.MustCompile(`[^\w\s]`)
	schemePrefix     = regexp.MustCompile(`(?i)^(?:https?://|www\.)`)
	knownHostsPrefix = regexp.MustCompile(`(?i)^(?:github\.com|linkedin\.com)`)
)

// CheckATS reports which essential fields (name, email, phone, education,
// work experience, skills, location, interests, volunteer work) are
// detectable in the document text via keyword and pattern heuristics. The
// report is compliant only when every field is found.
func CheckATS(text string) *ATSReport {
	lower := strings.ToLower(text)
	fields := map[string]bool{
		"full_name":       false,
		"email":           emailPattern.MatchString(text),
		"phone":           false,
		"education":       containsAny(lower, educationKeywords),
		"work_experience": containsAny(lower, experienceKeywords),
		"skills":          strings.Contains(lower, "skills"),
		"location":        containsAny(lower, locationKeywords),
		"interests":       containsAny(lower, interestsKeywords),
		"volunteer":       false,
	}
	if _, _, _, ok := findPhone(text); ok {
		fields["phone"] = true
	}
	if containsAny(lower, volunteerKeywords) {
		fields["volunteer"] = true
	}

	// A line with two or more capitalized words is taken as a name candidate.
	for _, line := range strings.Split(text, "\n") {
		if len(atsNameToken.FindAllString(line, -1)) >= 2 {
			fields["full_name"] = true
			break
		}
	}

	// Location refinement: the line carrying the email or phone often ends
	// with a place; any residue word that is not contact data counts.
	if !fields["location"] {
		fields["location"] = contactLineHasResidue(text)
	}

	report := &ATSReport{Fields: fields}
	report.ATSCompliant = allTrue(fields)
	return report
}

// contactLineHasResidue scans lines containing an email or phone for words
// that are not themselves emails, phones, or links.
func contactLineHasResidue(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if !emailPattern.MatchString(line) {
			if _, _, _, ok := findPhone(line); !ok {
				continue
			}
		}
		for _, word := range strings.Fields(line) {
			clean := nonWordOrSpace.ReplaceAllString(word, "")
			if len(clean) <= 2 {
				continue
			}
			if emailPattern.MatchString(word) || schemePrefix.MatchString(word) || knownHostsPrefix.MatchString(word) {
				continue
			}
			if _, _, _, ok := findPhone(word); ok {
				continue
			}
			if countDigits(word) == len(word) {
				continue
			}
			return true
		}
	}
	return false
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func allTrue(fields map[string]bool) bool {
	for _, found := range fields {
		if !found {
			return false
		}
	}
	return true
}
