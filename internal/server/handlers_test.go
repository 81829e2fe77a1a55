package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

// stubSource serves a fixed document regardless of the requested URL.
type stubSource struct {
	doc *types.RawDocument
}

func (s *stubSource) Load(context.Context, string) (*types.RawDocument, error) {
	return s.doc, nil
}

const fixtureResume = `Jane Doe
jane.doe@mail.com
+1 555-123-4567

SUMMARY
Seasoned backend engineer focused on distributed systems.

EXPERIENCE
Acme Corp — Senior Engineer
Jan 2020 - Present

SKILLS
Go, Python`

func newTestServer(doc *types.RawDocument) *Server {
	return New(Config{Port: 0, Source: &stubSource{doc: doc}})
}

func doRequest(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	var env Envelope
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func TestParseResume_Success(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/parse_resume", `{"file_url":"https://example.com/resume.pdf"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.Equal(t, "Resume parsed successfully.", env.Message)

	record, ok := env.Data.(map[string]any)
	require.True(t, ok)
	for _, key := range []string{
		"full_name", "email", "phone", "address", "summary",
		"work_experience", "education", "skills", "certifications", "links",
	} {
		require.Contains(t, record, key)
	}
	assert.Equal(t, "Jane Doe", record["full_name"])
	assert.Equal(t, "jane.doe@mail.com", record["email"])
	assert.Nil(t, record["address"])
	assert.Equal(t, []any{"Go", "Python"}, record["skills"])
	assert.Equal(t, []any{}, record["education"])
}

func TestParseResume_MissingFileURL(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	tests := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"empty file_url", `{"file_url":""}`},
		{"wrong key", `{"url":"https://example.com/resume.pdf"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, env := doRequest(t, s, http.MethodPost, "/api/parse_resume", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "error", env.Status)
			assert.Equal(t, http.StatusBadRequest, env.StatusCode)
			assert.Equal(t, "Missing 'file_url' in request body", env.Message)
			assert.Nil(t, env.Data)
		})
	}
}

func TestParseResume_InvalidJSON(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/parse_resume", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "Invalid request body")
}

func TestParseResume_ImageOnlyRejected(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{"ab", "c"}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/parse_resume", `{"file_url":"scan.pdf"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "not_text_extractable")
	assert.Nil(t, env.Data)
}

func TestParseResume_FetchFailureRejected(t *testing.T) {
	s := newTestServer(&types.RawDocument{Failure: &types.SourceFailure{
		Reason: types.ReasonFetchFailure,
		Detail: "HTTP 404",
	}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/parse_resume", `{"file_url":"https://example.com/missing.pdf"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, env.Message, "fetch_failure")
}

func TestIsReadable_Success(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/is_readable", `{"file_url":"resume.pdf"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "success", env.Status)
	assert.Equal(t, "PDF readability and ATS compliance check completed.", env.Message)

	report, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, report["is_readable"])
	assert.Contains(t, report, "ats_compliant")

	fields, ok := report["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, fields["email"])
	assert.Equal(t, true, fields["phone"])
}

func TestIsReadable_ImageOnlyCarriesReport(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{"ab"}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/is_readable", `{"file_url":"scan.pdf"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", env.Status)
	assert.Contains(t, env.Message, "not_text_extractable")

	// The rejection envelope still carries the negative report.
	report, ok := env.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, report["is_readable"])
	assert.Equal(t, false, report["ats_compliant"])
}

func TestIsReadable_MissingFileURL(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	rr, env := doRequest(t, s, http.MethodPost, "/api/is_readable", `{}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Missing 'file_url' in request body", env.Message)
}

func TestHealth(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/parse_resume", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitHeaders(t *testing.T) {
	s := newTestServer(&types.RawDocument{Pages: []string{fixtureResume}})

	rr, _ := doRequest(t, s, http.MethodPost, "/api/parse_resume", `{"file_url":"resume.pdf"}`)
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Remaining"))
}
