package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	documentai "cloud.google.com/go/documentai/apiv1"
	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/api/option"
)

// DocumentAIConfig identifies a Document AI OCR processor
type DocumentAIConfig struct {
	ProjectID       string
	Location        string // e.g. "us" or "eu"
	ProcessorID     string
	CredentialsFile string // Falls back to GOOGLE_APPLICATION_CREDENTIALS
}

// Validate reports missing processor settings
func (c DocumentAIConfig) Validate() error {
	var missing []string
	if c.ProjectID == "" {
		missing = append(missing, "project_id")
	}
	if c.Location == "" {
		missing = append(missing, "location")
	}
	if c.ProcessorID == "" {
		missing = append(missing, "processor_id")
	}
	if len(missing) > 0 {
		return fmt.Errorf("documentai: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c DocumentAIConfig) processorName() string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", c.ProjectID, c.Location, c.ProcessorID)
}

// DocumentAI recognizes page images with a Google Document AI OCR processor.
// One client is shared by every page of a run; call Close when done.
type DocumentAI struct {
	client *documentai.DocumentProcessorClient
	cfg    DocumentAIConfig
}

// NewDocumentAI connects to the regional Document AI endpoint of cfg.Location
func NewDocumentAI(ctx context.Context, cfg DocumentAIConfig) (*DocumentAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	credentials := cfg.CredentialsFile
	if credentials == "" {
		credentials = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	opts := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s-documentai.googleapis.com:443", cfg.Location)),
	}
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}

	client, err := documentai.NewDocumentProcessorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Document AI client: %w", err)
	}
	return &DocumentAI{client: client, cfg: cfg}, nil
}

// Recognize implements Engine
func (d *DocumentAI) Recognize(ctx context.Context, imagePath string) (string, error) {
	content, err := os.ReadFile(imagePath)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrToolFailed, imagePath, err)
	}

	req := processRequest(d.cfg.processorName(), imagePath, content)

	resp, err := d.client.ProcessDocument(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: document ai %s: %v", ErrToolFailed, imagePath, err)
	}
	return resp.GetDocument().GetText(), nil
}

// Close releases the client connection
func (d *DocumentAI) Close() error {
	if d == nil || d.client == nil {
		return nil
	}
	return d.client.Close()
}

// processRequest asks the processor to read content in the fixed OCR language
func processRequest(name, path string, content []byte) *documentaipb.ProcessRequest {
	return &documentaipb.ProcessRequest{
		Name: name,
		Source: &documentaipb.ProcessRequest_RawDocument{
			RawDocument: &documentaipb.RawDocument{
				Content:  content,
				MimeType: mimeType(path),
			},
		},
		ProcessOptions: &documentaipb.ProcessOptions{
			OcrConfig: &documentaipb.OcrConfig{
				Hints: &documentaipb.OcrConfig_Hints{
					LanguageHints: []string{languageHint(Language)},
				},
			},
		},
		SkipHumanReview: true,
	}
}

// languageHint maps a tesseract language model to the BCP-47 code Document AI
// expects.
func languageHint(model string) string {
	switch model {
	case "eng":
		return "en"
	case "fra":
		return "fr"
	case "deu":
		return "de"
	case "spa":
		return "es"
	default:
		return model
	}
}

func mimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".pdf":
		return "application/pdf"
	default:
		return "image/png"
	}
}
