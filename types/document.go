package types

// ExtractResult holds the outcome of extracting text from an uploaded PDF.
type ExtractResult struct {
	Filename  string // Original filename of the upload
	Text      string // Extracted text, truncated to the configured maximum
	CharCount int    // Length of the (possibly truncated) text
	Preview   string // First 300 characters of the text, trimmed
}

// DocumentServiceConfig contains configuration options for PDF processing
type DocumentServiceConfig struct {
	MaxChars    int // Maximum characters kept from a document
	PreviewSize int // Size of the preview excerpt
}

type UploadResponse struct {
	DocID     string `json:"doc_id"`
	Filename  string `json:"filename"`
	CharCount int    `json:"char_count"`
	Preview   string `json:"preview"`
}
