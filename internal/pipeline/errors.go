package pipeline

import "fmt"

// RejectionError is the terminal error outcome for a request whose document
// could not be processed. Reason is one of the stable codes in the types
// package (fetch_failure, not_text_extractable, unparseable_document);
// Message is the human-readable detail surfaced in the response.
type RejectionError struct {
	Reason  string
	Message string
}

func (e *RejectionError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return e.Reason
}
