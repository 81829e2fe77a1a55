package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestField_Helpers(t *testing.T) {
	t.Run("Found is present without span", func(t *testing.T) {
		f := Found("jane@mail.com")
		assert.True(t, f.Present)
		assert.Equal(t, "jane@mail.com", f.Value)
		assert.Nil(t, f.Span)
	})

	t.Run("FoundAt carries span", func(t *testing.T) {
		f := FoundAt("Jane Doe", 0, 8)
		assert.True(t, f.Present)
		require.NotNil(t, f.Span)
		assert.Equal(t, 0, f.Span.Start)
		assert.Equal(t, 8, f.Span.End)
	})

	t.Run("Absent has zero value", func(t *testing.T) {
		f := Absent[string]()
		assert.False(t, f.Present)
		assert.Equal(t, "", f.Value)
		assert.Nil(t, f.Span)
	})
}

func TestResumeRecord_FixedSchema(t *testing.T) {
	record := &ResumeRecord{
		WorkExperience: []WorkExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         []string{},
		Certifications: []CertificationEntry{},
		Links:          []string{},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))

	// Every key is present even when nothing was extracted.
	for _, key := range []string{
		"full_name", "email", "phone", "address", "summary",
		"work_experience", "education", "skills", "certifications", "links",
	} {
		require.Contains(t, decoded, key)
	}

	// Absent scalars serialize as null, collections as empty arrays.
	for _, key := range []string{"full_name", "email", "phone", "address", "summary"} {
		assert.Equal(t, "null", string(decoded[key]), "scalar %s should be null", key)
	}
	for _, key := range []string{"work_experience", "education", "skills", "certifications", "links"} {
		assert.Equal(t, "[]", string(decoded[key]), "collection %s should be an empty array", key)
	}
}

func TestResumeRecord_EntrySerialization(t *testing.T) {
	entry := EducationEntry{
		Organization: "State University",
		Degree:       "B.Sc. Computer Science",
		StartDate:    "2018",
		EndDate:      "2022",
	}

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "State University", decoded["organization"])
	assert.Equal(t, "B.Sc. Computer Science", decoded["title_or_degree"])
	assert.Equal(t, "2018", decoded["start_date"])
	assert.Equal(t, "2022", decoded["end_date"])
	assert.NotContains(t, decoded, "description")
}

func TestRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		fileURL string
		wantErr bool
	}{
		{"URL present", "https://example.com/resume.pdf", false},
		{"local path present", "/tmp/resume.pdf", false},
		{"missing file_url", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parseReq := &ParseResumeRequest{FileURL: tt.fileURL}
			readableReq := &IsReadableRequest{FileURL: tt.fileURL}
			if tt.wantErr {
				assert.Error(t, parseReq.Validate())
				assert.Error(t, readableReq.Validate())
			} else {
				assert.NoError(t, parseReq.Validate())
				assert.NoError(t, readableReq.Validate())
			}
		})
	}
}
