package types

import "errors"

var (
	// ErrDocumentNotFound is returned when a doc_id has no stored text.
	ErrDocumentNotFound = errors.New("document not found, please upload your PDF first")

	// ErrUnsupportedFileType is returned for non-PDF uploads.
	ErrUnsupportedFileType = errors.New("only PDF files are supported")

	// ErrUnextractableDocument is returned when a PDF yields no usable text,
	// e.g. a scanned image without a text layer.
	ErrUnextractableDocument = errors.New("could not extract text from this PDF, it may be a scanned image")

	// ErrMalformedModelOutput is returned when the model reply cannot be
	// parsed as JSON or fails schema validation.
	ErrMalformedModelOutput = errors.New("AI returned malformed output, try again")

	// ErrGenerationFailed covers every other provider or runtime failure
	// during a generation or chat call.
	ErrGenerationFailed = errors.New("generation failed")
)
