package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"bedrockrag/internal/ingest"
	"bedrockrag/pkg/logger"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Load .md/.txt/.html/.pdf files into the session store and start the RAG menu",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		docs, err := ingest.LoadDir(args[0], ingest.DefaultMaxChunkLen)
		if err != nil {
			return fmt.Errorf("load documents from %s: %w", args[0], err)
		}
		if len(docs) == 0 {
			fmt.Println("No importable documents found.")
			return nil
		}

		logger.Get().Infow("importing documents", "dir", args[0], "count", len(docs))
		if err := a.service.AddDocuments(ctx, docs); err != nil {
			fmt.Printf("Error importing documents: %v\n", err)
			return nil
		}
		fmt.Printf("%d documents imported successfully\n", len(docs))

		runMenu(ctx, a.service)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
