package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/studydrop/studydrop-be/types"
)

func TestExtractRejectsGarbageBytes(t *testing.T) {
	pdfService := NewPDFService(DefaultDocumentServiceConfig)

	_, err := pdfService.Extract([]byte("this is not a pdf"), "notes.pdf")
	assert.True(t, errors.Is(err, types.ErrUnextractableDocument))
}

func TestExtractRejectsEmptyInput(t *testing.T) {
	pdfService := NewPDFService(DefaultDocumentServiceConfig)

	_, err := pdfService.Extract(nil, "empty.pdf")
	assert.True(t, errors.Is(err, types.ErrUnextractableDocument))
}

func TestNewPDFServiceDefaults(t *testing.T) {
	pdfService := NewPDFService(types.DocumentServiceConfig{})
	assert.Equal(t, DefaultDocumentServiceConfig.MaxChars, pdfService.maxChars)
	assert.Equal(t, DefaultDocumentServiceConfig.PreviewSize, pdfService.previewSize)
}
