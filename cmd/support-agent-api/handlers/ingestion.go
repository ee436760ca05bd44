package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"supportagent/internal/ingest"
	"supportagent/internal/observability"
)

// Ingestor runs a single manual ingestion attempt.
type Ingestor interface {
	Ingest(ctx context.Context, downloadURL string) (*ingest.Result, error)
}

// IngestionHandler serves manual ingestion requests. A nil ingestor means the
// Gemini credential was absent at startup; requests then fail before any
// network I/O.
type IngestionHandler struct {
	logger   *observability.Logger
	ingestor Ingestor
}

// NewIngestionHandler creates a new ingestion handler.
func NewIngestionHandler(logger *observability.Logger, ingestor Ingestor) *IngestionHandler {
	return &IngestionHandler{logger: logger, ingestor: ingestor}
}

// IngestionRequestDTO is the ingest request body.
type IngestionRequestDTO struct {
	DownloadURL string `json:"download_url"`
}

// IngestionResponseDTO is the ingest success response body.
type IngestionResponseDTO struct {
	FileURI  string `json:"file_uri"`
	FileName string `json:"file_name"`
	Status   string `json:"status"`
}

// Ingest handles POST /api/v1/ingest.
func (h *IngestionHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	if h.ingestor == nil {
		writeError(w, http.StatusInternalServerError, errAPIKeyNotSet)
		return
	}

	var req IngestionRequestDTO
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if req.DownloadURL == "" {
		writeError(w, http.StatusBadRequest, errMissingDownloadURL)
		return
	}

	jobID := uuid.New()
	logger := h.logger.With("job_id", jobID.String())
	logger.Info().Str("download_url", req.DownloadURL).Msg("Starting manual ingestion")

	result, err := h.ingestor.Ingest(r.Context(), req.DownloadURL)
	if err != nil {
		logger.Error().Err(err).Str("stage", string(ingest.KindOf(err))).Msg("Ingestion failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logger.Info().Str("file_name", result.FileName).Msg("Manual ingested")

	writeJSON(w, http.StatusOK, IngestionResponseDTO{
		FileURI:  result.FileURI,
		FileName: result.FileName,
		Status:   "success",
	})
}
