package extraction

import (
	"github.com/jonathan/resume-parser/internal/types"
)

// Extraction collects the outputs of the independent field extractors. Each
// goroutine of the pipeline fan-out writes a disjoint set of fields, so the
// struct needs no locking.
type Extraction struct {
	FullName       types.Field[string]
	Email          types.Field[string]
	Phone          types.Field[string]
	Address        types.Field[string]
	Summary        types.Field[string]
	WorkExperience types.Field[[]types.WorkExperienceEntry]
	Education      types.Field[[]types.EducationEntry]
	Skills         types.Field[[]string]
	Certifications types.Field[[]types.CertificationEntry]
	Links          types.Field[[]string]
}

// Assemble merges extractor outputs into the final record. The merge is a
// pure mapping with a single policy: absent scalars become null, absent
// collections become empty. There is no cross-field validation; a record
// with every field absent is still a valid success outcome.
func Assemble(x *Extraction) *types.ResumeRecord {
	rec := &types.ResumeRecord{
		WorkExperience: []types.WorkExperienceEntry{},
		Education:      []types.EducationEntry{},
		Skills:         []string{},
		Certifications: []types.CertificationEntry{},
		Links:          []string{},
	}

	rec.FullName = scalar(x.FullName)
	rec.Email = scalar(x.Email)
	rec.Phone = scalar(x.Phone)
	rec.Address = scalar(x.Address)
	rec.Summary = scalar(x.Summary)

	if x.WorkExperience.Present {
		rec.WorkExperience = x.WorkExperience.Value
	}
	if x.Education.Present {
		rec.Education = x.Education.Value
	}
	if x.Skills.Present {
		rec.Skills = x.Skills.Value
	}
	if x.Certifications.Present {
		rec.Certifications = x.Certifications.Value
	}
	if x.Links.Present {
		rec.Links = x.Links.Value
	}

	return rec
}

func scalar(f types.Field[string]) *string {
	if !f.Present {
		return nil
	}
	v := f.Value
	return &v
}
