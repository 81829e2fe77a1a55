package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "document rejection",
			err:  &pipeline.RejectionError{Reason: types.ReasonNotTextExtractable},
			want: http.StatusBadRequest,
		},
		{
			name: "wrapped rejection",
			err:  fmt.Errorf("pipeline: %w", &pipeline.RejectionError{Reason: types.ReasonFetchFailure}),
			want: http.StatusBadRequest,
		},
		{
			name: "request validation failure",
			err:  (&types.ParseResumeRequest{}).Validate(),
			want: http.StatusBadRequest,
		},
		{
			name: "unknown error",
			err:  errors.New("boom"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
