package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

// handleParseResume runs the extraction pipeline on the document named in
// the request body and returns the structured record.
func (s *Server) handleParseResume(w http.ResponseWriter, r *http.Request) {
	var req types.ParseResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file_url' in request body", nil)
		return
	}

	record, err := pipeline.Run(r.Context(), pipeline.Options{FileURL: req.FileURL, Source: s.source})
	if err != nil {
		log.Printf("parse_resume rejected %s: %v", req.FileURL, err)
		s.errorResponse(w, HTTPStatus(err), err.Error(), nil)
		return
	}

	s.successResponse(w, record, "Resume parsed successfully.")
}

// handleIsReadable classifies the document's readability and reports ATS
// compliance. An image-only document gets an error envelope that still
// carries the negative report, so clients always see the fixed shape.
func (s *Server) handleIsReadable(w http.ResponseWriter, r *http.Request) {
	var req types.IsReadableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'file_url' in request body", nil)
		return
	}

	report, err := pipeline.Check(r.Context(), pipeline.Options{FileURL: req.FileURL, Source: s.source})
	if err != nil {
		log.Printf("is_readable rejected %s: %v", req.FileURL, err)
		var rejection *pipeline.RejectionError
		if errors.As(err, &rejection) && report != nil {
			s.errorResponse(w, http.StatusBadRequest, rejection.Error(), report)
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error(), nil)
		return
	}

	s.successResponse(w, report, "PDF readability and ATS compliance check completed.")
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
