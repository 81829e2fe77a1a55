// Package pipeline provides the high-level orchestration for a single parse
// request: textsource load, document validation, section segmentation,
// concurrent field extraction, and result assembly. Each request is
// processed independently; every intermediate value is immutable, so the
// pipeline is safe to run on any number of requests in parallel.
package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/textsource"
	"github.com/jonathan/resume-parser/internal/types"
)

// Options holds the inputs for a single pipeline run.
type Options struct {
	FileURL string
	Source  textsource.Source
}

// Run executes the full pipeline for one document. A TextDocument verdict
// always yields a record, even when every field is absent; image-only and
// unreadable documents short-circuit into a RejectionError before any
// extractor runs. There are no retries here — retries belong to the fetch
// collaborator.
func Run(ctx context.Context, opts Options) (*types.ResumeRecord, error) {
	raw, err := opts.Source.Load(ctx, opts.FileURL)
	if err != nil {
		return nil, err
	}

	verdict := extraction.Validate(raw)
	if verdict.Kind != extraction.VerdictText {
		return nil, &RejectionError{Reason: verdict.Reason, Message: verdict.Detail}
	}

	return Extract(ctx, verdict.Text)
}

// Extract runs segmentation, the extractor fan-out, and assembly over
// already-validated document text. Extractors are independent pure
// functions; they run concurrently and each goroutine writes a disjoint
// set of result fields.
func Extract(ctx context.Context, text string) (*types.ResumeRecord, error) {
	doc := extraction.Normalize(text)
	sections := extraction.Segment(doc)
	header := extraction.FindSection(sections, extraction.HeadingHeader)

	var x extraction.Extraction
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		x.Email = extraction.ExtractEmail(doc, header)
		x.Phone = extraction.ExtractPhone(doc, header)
		x.Links = extraction.ExtractLinks(doc)
		return nil
	})
	g.Go(func() error {
		x.FullName = extraction.ExtractFullName(header)
		x.Address = extraction.ExtractAddress(header)
		return nil
	})
	g.Go(func() error {
		x.WorkExperience = extraction.ExtractWorkExperience(sections)
		x.Education = extraction.ExtractEducation(sections)
		return nil
	})
	g.Go(func() error {
		x.Skills = extraction.ExtractSkills(sections)
		x.Certifications = extraction.ExtractCertifications(sections)
		x.Summary = extraction.ExtractSummary(doc, sections)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return extraction.Assemble(&x), nil
}

// ReadabilityReport is the outcome of a readability and ATS compliance
// check. Fields is always non-nil so the serialized shape is fixed.
type ReadabilityReport struct {
	IsReadable   bool            `json:"is_readable"`
	ATSCompliant bool            `json:"ats_compliant"`
	Fields       map[string]bool `json:"fields"`
}

// Check classifies the document's readability and, when readable, runs the
// ATS compliance heuristics. For an image-only document it returns both a
// negative report and the rejection, so callers can include the report in
// the error payload; unreadable documents return the rejection alone.
func Check(ctx context.Context, opts Options) (*ReadabilityReport, error) {
	raw, err := opts.Source.Load(ctx, opts.FileURL)
	if err != nil {
		return nil, err
	}

	verdict := extraction.Validate(raw)
	switch verdict.Kind {
	case extraction.VerdictUnreadable:
		return nil, &RejectionError{Reason: verdict.Reason, Message: verdict.Detail}
	case extraction.VerdictImageOnly:
		report := &ReadabilityReport{Fields: map[string]bool{}}
		return report, &RejectionError{Reason: verdict.Reason, Message: verdict.Detail}
	}

	ats := extraction.CheckATS(extraction.Normalize(verdict.Text))
	return &ReadabilityReport{
		IsReadable:   true,
		ATSCompliant: ats.ATSCompliant,
		Fields:       ats.Fields,
	}, nil
}
