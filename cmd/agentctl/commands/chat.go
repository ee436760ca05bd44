package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"supportagent/cmd/agentctl/ui"
	"supportagent/internal/chat"
	"supportagent/internal/observability"
)

var (
	chatMessage  string
	chatFileURI  string
	chatFileName string
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask a question about an ingested manual",
	RunE:  runChat,
}

func init() {
	chatCmd.Flags().StringVarP(&chatMessage, "message", "m", "", "question to ask (required)")
	chatCmd.Flags().StringVar(&chatFileURI, "file-uri", "", "file URI from a prior ingestion")
	chatCmd.Flags().StringVar(&chatFileName, "file-name", "", "file name from a prior ingestion")
	chatCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
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

	responder := chat.NewResponder(logger, client)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	spin := ui.NewSpinner("Waiting for Gemini...")
	spin.Start()
	text, err := responder.Respond(ctx, chat.Turn{
		UserMessage: chatMessage,
		FileURI:     chatFileURI,
		FileName:    chatFileName,
	})
	spin.Stop()

	if err != nil {
		ui.Error("Chat failed: %v", err)
		return fmt.Errorf("chat: %w", err)
	}

	ui.Section("Response")
	fmt.Println(text)
	return nil
}
