// Package server provides the HTTP REST API for the resume parser.
package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-parser/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Document rejections and request validation failures are client errors;
// anything else is an internal fault.
func HTTPStatus(err error) int {
	var rejection *pipeline.RejectionError
	if errors.As(err, &rejection) {
		return http.StatusBadRequest
	}
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
