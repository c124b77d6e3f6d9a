package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"invex/internal/config"
	"invex/internal/domain"
	"invex/internal/linker"
	"invex/internal/normalize"
	"invex/internal/parser"
	"invex/internal/port"
	"invex/internal/tabular"
)

// TableReader materializes spreadsheet bytes into a table of named columns.
type TableReader func(data []byte) (*tabular.Table, error)

// ExtractInput is the DTO for one extraction request.
type ExtractInput struct {
	FileName    string
	FileType    domain.FileType
	ContentType string
	Data        []byte
}

// ExtractionService runs the full pipeline for one uploaded document:
// source-specific extraction, normalization, validation, and record linking.
type ExtractionService interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.RecordBag, error)
}

type extractionService struct {
	parser    port.DocumentParser
	readTable TableReader
	storage   port.ObjectStorage // nil when archival is disabled
	s3cfg     *config.S3Config
}

// NewExtractionService creates an ExtractionService. storage may be nil when
// upload archival is not configured.
func NewExtractionService(docParser port.DocumentParser, readTable TableReader, storage port.ObjectStorage, s3cfg *config.S3Config) ExtractionService {
	return &extractionService{
		parser:    docParser,
		readTable: readTable,
		storage:   storage,
		s3cfg:     s3cfg,
	}
}

// Extract dispatches on file type, then normalizes, validates, and links the
// provisional bag. Per-record anomalies are absorbed as warnings; only an
// unsupported file type is returned as an error. An unreadable source or a
// fully unparseable model response yields an empty bag with a single
// explanatory validation error.
func (s *extractionService) Extract(ctx context.Context, input ExtractInput) (*domain.RecordBag, error) {
	s.archive(ctx, input)

	var bag *domain.RecordBag
	switch input.FileType {
	case domain.FileTypeExcel:
		bag = s.extractTabular(input)
	case domain.FileTypePDF, domain.FileTypeImage:
		bag = s.extractViaModel(ctx, input)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, input.FileType)
	}

	normalize.Normalize(bag)
	bag.ValidationErrors = append(bag.ValidationErrors, normalize.Validate(bag)...)

	linkResult := linker.Link(bag)
	for _, ref := range linkResult.Unmatched {
		log.Printf("extractionService: invoice %d references unknown %s %q",
			ref.InvoiceIndex+1, ref.Kind, ref.Name)
	}

	if bag.ValidationErrors == nil {
		bag.ValidationErrors = []string{}
	}
	return bag, nil
}

// extractTabular reads the spreadsheet, classifies its shape, and runs the
// matching extractor. A file that cannot be read at all is fatal for the
// request; a recognized-but-empty generic table is only a warning.
func (s *extractionService) extractTabular(input ExtractInput) *domain.RecordBag {
	table, err := s.readTable(input.Data)
	if err != nil {
		log.Printf("extractionService: reading table from %s: %v", input.FileName, err)
		return domain.EmptyBag(fmt.Sprintf("Error reading Excel file: %v", err))
	}

	shape, mapping := tabular.Classify(table.Columns)
	log.Printf("extractionService: classified %s as %s", input.FileName, shape)

	bag := tabular.Extract(table, shape, mapping)
	if shape == tabular.ShapeGeneric && bag.IsEmpty() {
		bag.ValidationErrors = append(bag.ValidationErrors,
			"Unrecognized table format: no usable rows found")
	}
	return bag
}

// extractViaModel calls the document-understanding service, repairs the
// response text, and decodes it into a provisional bag. No retry: a failed
// or malformed response terminates this request's extraction.
func (s *extractionService) extractViaModel(ctx context.Context, input ExtractInput) *domain.RecordBag {
	out, err := s.parser.Parse(ctx, port.ParseInput{
		FileBytes:   input.Data,
		ContentType: input.ContentType,
	})
	if err != nil {
		log.Printf("extractionService: model call for %s failed: %v", input.FileName, err)
		return domain.EmptyBag(fmt.Sprintf("Error extracting data from %s: %v", input.FileType, err))
	}

	cleaned := parser.SanitizeJSON(out.Text)

	var bag domain.RecordBag
	if err := json.Unmarshal([]byte(cleaned), &bag); err != nil {
		log.Printf("extractionService: model response for %s unparseable after repair: %v", input.FileName, err)
		return domain.EmptyBag(fmt.Sprintf("Error extracting data from %s: invalid JSON in model response: %v", input.FileType, err))
	}

	if bag.Invoices == nil {
		bag.Invoices = []domain.Invoice{}
	}
	if bag.Products == nil {
		bag.Products = []domain.Product{}
	}
	if bag.Customers == nil {
		bag.Customers = []domain.Customer{}
	}
	return &bag
}

// archive best-effort stores the raw upload in object storage. Failures are
// logged and never affect the extraction result.
func (s *extractionService) archive(ctx context.Context, input ExtractInput) {
	if s.storage == nil || s.s3cfg == nil || !s.s3cfg.Enabled() {
		return
	}
	key := fmt.Sprintf("uploads/%s-%s", uuid.New().String(), input.FileName)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(input.Data),
		ContentType: input.ContentType,
		Size:        int64(len(input.Data)),
	})
	if err != nil {
		log.Printf("extractionService: archiving %s failed: %v", input.FileName, err)
	}
}
