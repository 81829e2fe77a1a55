package types

// SourceFailure records why the textsource collaborator could not produce
// page text. Reason is one of the stable rejection codes; Detail is the
// human-readable explanation surfaced in the response message.
type SourceFailure struct {
	Reason string
	Detail string
}

// RawDocument is the textsource adapter's output: the per-page plain text of
// a fetched document, in source page order, plus the original byte length.
// A fetch or parse failure is carried in Failure instead of pages; the
// document validator turns it into an Unreadable verdict. RawDocument is
// immutable once produced.
type RawDocument struct {
	Pages   []string
	ByteLen int
	Failure *SourceFailure
}
