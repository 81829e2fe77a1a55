// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

// Span marks the half-open [Start, End) byte range in the normalized document
// text that a field value was taken from.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Field wraps an extracted value with an explicit present/absent state.
// Extractors return Absent when nothing matched; an absent field is a normal
// outcome, not an error, and serializes as null rather than a zero value.
type Field[T any] struct {
	Value   T
	Present bool
	Span    *Span
}

// Found returns a present Field holding value.
func Found[T any](value T) Field[T] {
	return Field[T]{Value: value, Present: true}
}

// FoundAt returns a present Field holding value with its source span.
func FoundAt[T any](value T, start, end int) Field[T] {
	return Field[T]{Value: value, Present: true, Span: &Span{Start: start, End: end}}
}

// Absent returns an absent Field.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// WorkExperienceEntry is one job within the work experience list. Equality is
// structural; entries carry no identity beyond their fields.
type WorkExperienceEntry struct {
	Organization string `json:"organization"`
	Title        string `json:"title_or_degree"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Description  string `json:"description,omitempty"`
}

// EducationEntry is one degree or program within the education list.
type EducationEntry struct {
	Organization string `json:"organization"`
	Degree       string `json:"title_or_degree"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Description  string `json:"description,omitempty"`
}

// CertificationEntry is one certification or license.
type CertificationEntry struct {
	Name string `json:"name"`
	Date string `json:"date,omitempty"`
}

// ResumeRecord is the output aggregate of the extraction pipeline. Scalar
// fields serialize as null when absent and collections as empty arrays; keys
// are never omitted, so consumers can rely on a fixed schema. Records are
// created once by the assembler and never mutated.
type ResumeRecord struct {
	FullName       *string               `json:"full_name"`
	Email          *string               `json:"email"`
	Phone          *string               `json:"phone"`
	Address        *string               `json:"address"`
	Summary        *string               `json:"summary"`
	WorkExperience []WorkExperienceEntry `json:"work_experience"`
	Education      []EducationEntry      `json:"education"`
	Skills         []string              `json:"skills"`
	Certifications []CertificationEntry  `json:"certifications"`
	Links          []string              `json:"links"`
}
