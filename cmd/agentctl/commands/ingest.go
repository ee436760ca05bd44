package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"supportagent/cmd/agentctl/ui"
	"supportagent/internal/ingest"
	"supportagent/internal/observability"
)

var ingestURL string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Download a PDF manual and ingest it into the Gemini file store",
	RunE:  runIngest,
}

func init() {
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "manual download URL (required)")
	ingestCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}

	logger := observability.Nop()
	if verbose {
		logger = observability.DefaultLogger()
	}

	pipeline := ingest.NewPipeline(logger, client, ingest.PipelineConfig{
		FetchTimeout: cfg.Ingestion.FetchTimeout.Std(),
		UserAgent:    cfg.Ingestion.UserAgent,
		PollInterval: cfg.Ingestion.PollInterval.Std(),
		PollCeiling:  cfg.Ingestion.PollCeiling.Std(),
	})

	ui.Section("Ingest Manual")
	ui.Verbose("Download URL: %s", ingestURL)

	// The pipeline blocks through download, upload, and the readiness poll,
	// so the whole attempt gets one bounded context.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	spin := ui.NewSpinner("Downloading and uploading manual...")
	spin.Start()
	result, err := pipeline.Ingest(ctx, ingestURL)
	spin.Stop()

	if err != nil {
		ui.Error("Ingestion failed: %v", err)
		return fmt.Errorf("ingest manual: %w", err)
	}

	ui.Success("Manual ingested")
	ui.Table([]string{"Field", "Value"}, [][]string{
		{"file_uri", result.FileURI},
		{"file_name", result.FileName},
	})
	ui.Info("Pass --file-uri and --file-name to `agentctl chat` to ask about this manual")
	return nil
}
