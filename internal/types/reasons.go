package types

// Stable machine-checkable rejection reason codes. Every rejected request
// carries exactly one of these so consumers can distinguish the failure
// kinds without parsing the human-readable message.
const (
	// ReasonFetchFailure means the collaborator could not retrieve the bytes.
	ReasonFetchFailure = "fetch_failure"
	// ReasonNotTextExtractable means the document classified as image-only.
	ReasonNotTextExtractable = "not_text_extractable"
	// ReasonUnparseableDocument means the bytes are corrupt or not a document.
	ReasonUnparseableDocument = "unparseable_document"
)
