// Package commands implements the agentctl CLI commands.
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"supportagent/cmd/agentctl/ui"
	"supportagent/internal/config"
	"supportagent/internal/genai"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "agentctl",
	Short: "Support agent CLI - search the product catalog, ingest manuals, and chat",
	Long: `agentctl drives the support agent core from the terminal: search the curated
ABB product catalog by category path, ingest a PDF manual into the Gemini
file store, and ask questions about an ingested manual.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Init(noColor, verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the .env file (if any) and the agent configuration.
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newGeminiClient builds a Gemini client from config, failing when the
// credential is absent.
func newGeminiClient(cfg *config.Config) (*genai.Client, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return genai.NewClient(genai.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: cfg.Gemini.Timeout.Std(),
	})
}
