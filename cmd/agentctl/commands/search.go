package commands

import (
	"github.com/spf13/cobra"

	"supportagent/cmd/agentctl/ui"
	"supportagent/internal/catalog"
)

var searchPath string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the product catalog by category path",
	Long:  `Search the curated product catalog using a category path like "ABB Products > HPR > Rectifier".`,
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchPath, "path", "p", "", "category path (required)")
	searchCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := catalog.NormalizeCategoryPath(searchPath)
	result := catalog.Search(query)

	ui.Section("Catalog Search")
	ui.Info("Query: %s", result.Query)

	if len(result.Entries) == 0 {
		ui.Warning("No curated products matched")
	} else {
		rows := make([][]string, 0, len(result.Entries))
		for _, e := range result.Entries {
			rows = append(rows, []string{e.Title, e.DownloadURL})
		}
		ui.Table([]string{"Title", "Download URL"}, rows)
	}

	ui.Info("Library search: %s", result.SearchURL)
	return nil
}
