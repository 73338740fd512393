package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bedrockrag/internal/bedrock"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List chat models available for on-demand invocation",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		models, err := client.ListChatModels(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing models: %v\n", err)
			return nil
		}

		printModels(models)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func printModels(models []bedrock.ModelSummary) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("AVAILABLE MODELS IN AMAZON BEDROCK")
	fmt.Println(strings.Repeat("=", 80) + "\n")

	if len(models) == 0 {
		fmt.Println("No available models found.")
		return
	}

	for i, m := range models {
		fmt.Printf("%d. %s\n", i+1, m.ModelName)
		fmt.Printf("   ID: %s\n", m.ModelID)
		fmt.Printf("   Provider: %s\n\n", m.ProviderName)
	}

	fmt.Println("Note: only models with on-demand support are shown.")
}
