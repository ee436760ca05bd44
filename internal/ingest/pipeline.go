// Package ingest downloads PDF manuals and hands them to the Gemini file
// store, waiting until the store reports them ready for generation.
package ingest

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"supportagent/internal/genai"
	"supportagent/internal/observability"
)

// FileStore is the slice of the Gemini client the pipeline needs.
type FileStore interface {
	UploadFile(ctx context.Context, path, mimeType string) (*genai.File, error)
	GetFile(ctx context.Context, name string) (*genai.File, error)
}

// Result is a successful ingestion outcome.
type Result struct {
	FileURI  string
	FileName string
}

// PipelineConfig holds ingestion pipeline settings.
type PipelineConfig struct {
	FetchTimeout time.Duration
	UserAgent    string
	PollInterval time.Duration
	PollCeiling  time.Duration
}

// Pipeline runs a single-attempt ingestion: fetch, unwrap, upload, poll.
type Pipeline struct {
	logger  *observability.Logger
	fetcher *Fetcher
	store   FileStore

	pollInterval time.Duration
	pollCeiling  time.Duration

	// sleep is swapped out in tests so the poll loop runs instantly.
	sleep func(time.Duration)
}

// NewPipeline creates an ingestion pipeline backed by the given file store.
func NewPipeline(logger *observability.Logger, store FileStore, cfg PipelineConfig) *Pipeline {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.PollCeiling <= 0 {
		cfg.PollCeiling = 120 * time.Second
	}
	return &Pipeline{
		logger:       logger,
		fetcher:      NewFetcher(cfg.FetchTimeout, cfg.UserAgent),
		store:        store,
		pollInterval: cfg.PollInterval,
		pollCeiling:  cfg.PollCeiling,
		sleep:        time.Sleep,
	}
}

// Ingest downloads the manual at downloadURL, unwrapping the ABB library
// viewer page when the server returns HTML instead of the PDF itself, uploads
// the PDF to the file store, and blocks until the store reports it ACTIVE or
// the poll ceiling is reached. The temporary copy of the PDF is removed on
// every exit path.
func (p *Pipeline) Ingest(ctx context.Context, downloadURL string) (*Result, error) {
	body, contentType, err := p.fetcher.Get(ctx, downloadURL)
	if err != nil {
		return nil, err
	}

	pdf := body
	if strings.Contains(contentType, "text/html") {
		pdfURL, err := pdfURLFromViewer(body, downloadURL)
		if err != nil {
			return nil, err
		}

		p.logger.Debug().Str("pdf_url", pdfURL).Msg("Unwrapped viewer page")

		pdf, _, err = p.fetcher.Get(ctx, pdfURL)
		if err != nil {
			return nil, err
		}
	}

	tmp, err := os.CreateTemp("", "manual-*.pdf")
	if err != nil {
		return nil, uploadErr("create temp file", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		return nil, uploadErr("write temp file", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, uploadErr("close temp file", err)
	}

	file, err := p.store.UploadFile(ctx, tmpPath, "application/pdf")
	if err != nil {
		return nil, uploadErr("upload manual", err)
	}

	p.logger.Info().
		Str("file_name", file.Name).
		Str("state", file.State).
		Int("size_bytes", len(pdf)).
		Msg("Manual uploaded")

	file, err = p.waitUntilReady(ctx, file)
	if err != nil {
		return nil, err
	}

	return &Result{FileURI: file.URI, FileName: file.Name}, nil
}

// waitUntilReady polls the file store until the file leaves PROCESSING or the
// ceiling elapses. A file that is not ACTIVE afterwards, whether it failed or
// simply never finished, is reported as a processing error carrying the
// observed state.
func (p *Pipeline) waitUntilReady(ctx context.Context, file *genai.File) (*genai.File, error) {
	elapsed := time.Duration(0)
	for file.State == genai.FileStateProcessing && elapsed < p.pollCeiling {
		p.sleep(p.pollInterval)
		elapsed += p.pollInterval

		current, err := p.store.GetFile(ctx, file.Name)
		if err != nil {
			return nil, processingErr(fmt.Sprintf("poll file status: %v", err))
		}
		file = current
	}

	if file.State != genai.FileStateActive {
		return nil, processingErr(fmt.Sprintf("file processing failed: %s", file.State))
	}
	return file, nil
}
