package types

import "github.com/go-playground/validator/v10"

// ParseResumeRequest is the request body for POST /api/parse_resume.
type ParseResumeRequest struct {
	FileURL string `json:"file_url" validate:"required"`
}

// IsReadableRequest is the request body for POST /api/is_readable.
type IsReadableRequest struct {
	FileURL string `json:"file_url" validate:"required"`
}

// Validate validates the ParseResumeRequest using the validator.
func (r *ParseResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IsReadableRequest using the validator.
func (r *IsReadableRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
