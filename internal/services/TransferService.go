package services

import (
	"bytes"
	"errors"
	"fmt"
	"portfolio/internal/models"
	"portfolio/internal/providers"
	"portfolio/internal/storage"

	json "github.com/goccy/go-json"
)

var ErrImportRejected = errors.New("import rejected")

// zstd frame magic number; compressed backups start with it.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

type ImportPreview struct {
	Counts       models.Counts `json:"counts"`
	AboutHeading string        `json:"aboutHeading"`
}

type TransferServiceInterface interface {
	Export() *models.ExportDocument
	ExportJSON() ([]byte, error)
	Preview(raw []byte) (*ImportPreview, error)
	Apply(raw []byte) (*ImportPreview, error)
	Reset() error
}

type TransferService struct {
	content    ContentServiceInterface
	compressor storage.CompressorInterface
	logger     providers.Logger
}

func NewTransferService(content ContentServiceInterface, compressor storage.CompressorInterface, logger providers.Logger) TransferServiceInterface {
	return &TransferService{
		content:    content,
		compressor: compressor,
		logger:     logger,
	}
}

func (t *TransferService) Export() *models.ExportDocument {
	return t.content.Snapshot()
}

func (t *TransferService) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(t.Export(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("unable to encode export: %w", err)
	}
	return data, nil
}

// Preview validates raw without touching the store. A zstd-compressed backup
// is accepted as well as plain JSON.
func (t *TransferService) Preview(raw []byte) (*ImportPreview, error) {
	doc, err := t.parse(raw)
	if err != nil {
		return nil, err
	}
	return &ImportPreview{Counts: doc.Counts(), AboutHeading: doc.About.Heading}, nil
}

// Apply replaces all content with the document in raw. Nothing is written
// unless the whole document is valid.
func (t *TransferService) Apply(raw []byte) (*ImportPreview, error) {
	doc, err := t.parse(raw)
	if err != nil {
		return nil, err
	}
	doc.Normalize()

	if err := t.content.Replace(doc); err != nil {
		return nil, fmt.Errorf("unable to import: %w", err)
	}
	counts := doc.Counts()
	t.logger.Infof(providers.TypeApp, "Imported %d projects, %d skills, %d experiences, %d education",
		counts.Projects, counts.Skills, counts.Experiences, counts.Education)

	return &ImportPreview{Counts: counts, AboutHeading: doc.About.Heading}, nil
}

// Reset deletes every content key, restores the default about section and reloads.
func (t *TransferService) Reset() error {
	if err := t.content.Reset(); err != nil {
		t.logger.Errorf(providers.TypeApp, "Reset incomplete: %s", err)
		return err
	}
	t.logger.Warnf(providers.TypeApp, "All content reset to defaults")
	return nil
}

func (t *TransferService) parse(raw []byte) (*models.ExportDocument, error) {
	if bytes.HasPrefix(raw, zstdMagic) {
		if t.compressor == nil {
			return nil, fmt.Errorf("%w: compressed input is not supported", ErrImportRejected)
		}
		plain, err := t.compressor.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: unable to decompress: %w", ErrImportRejected, err)
		}
		raw = plain
	}

	doc, err := models.ParseExportDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImportRejected, err)
	}
	return doc, nil
}
