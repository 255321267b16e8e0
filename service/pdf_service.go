package service

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/studydrop/studydrop-be/types"
	"github.com/studydrop/studydrop-be/utils"
)

// TruncationMarker is appended whenever a document exceeds the character
// budget and had to be cut.
const TruncationMarker = "\n\n[Document truncated for processing]"

var DefaultDocumentServiceConfig = types.DocumentServiceConfig{
	MaxChars:    40_000,
	PreviewSize: 300,
}

// PDFService extracts plain text from uploaded PDF bytes.
type PDFService struct {
	maxChars    int
	previewSize int
}

func NewPDFService(config types.DocumentServiceConfig) *PDFService {
	if config.MaxChars <= 0 {
		config.MaxChars = DefaultDocumentServiceConfig.MaxChars
	}
	if config.PreviewSize <= 0 {
		config.PreviewSize = DefaultDocumentServiceConfig.PreviewSize
	}
	return &PDFService{
		maxChars:    config.MaxChars,
		previewSize: config.PreviewSize,
	}
}

// Extract pulls the text layer out of a PDF. A corrupt file or one without
// any text layer (a scanned image) fails with ErrUnextractableDocument.
// Text beyond the character budget is dropped and a truncation marker
// appended, so huge documents never reach the model whole.
func (s *PDFService) Extract(data []byte, filename string) (*types.ExtractResult, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrUnextractableDocument, err)
	}

	var full strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages instead of failing the whole document.
			continue
		}
		if strings.TrimSpace(pageText) == "" {
			continue
		}
		full.WriteString(pageText)
		full.WriteString("\n\n")
	}

	text := full.String()
	if strings.TrimSpace(text) == "" {
		return nil, types.ErrUnextractableDocument
	}

	text = utils.TruncateText(text, s.maxChars, TruncationMarker)

	return &types.ExtractResult{
		Filename:  filename,
		Text:      text,
		CharCount: len(text),
		Preview:   utils.Preview(text, s.previewSize),
	}, nil
}

// ExtractFromReader reads everything from r and extracts it as a PDF.
func (s *PDFService) ExtractFromReader(r io.Reader, filename string) (*types.ExtractResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return s.Extract(data, filename)
}
