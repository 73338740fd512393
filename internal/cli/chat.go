package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"bedrockrag/internal/bedrock"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Pick a model and hold a conversation with it",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		models, err := client.ListChatModels(ctx)
		if err != nil {
			fmt.Printf("Error listing models: %v\n", err)
			return nil
		}
		printModels(models)
		if len(models) == 0 {
			return nil
		}

		in := bufio.NewScanner(os.Stdin)
		selected, ok := selectModel(in, models)
		if !ok {
			return nil
		}

		fmt.Printf("\nSelected model: %s\n", selected.ModelName)
		fmt.Printf("   ID: %s\n\n", selected.ModelID)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Println("CONVERSATION (type 'exit' or 'quit' to end)")
		fmt.Println(strings.Repeat("=", 80) + "\n")

		for {
			fmt.Print("You: ")
			if !in.Scan() {
				break
			}
			input := strings.TrimSpace(in.Text())

			if isExit(input) {
				fmt.Println("\nGoodbye!")
				break
			}
			if input == "" {
				continue
			}

			fmt.Print("\nAssistant: ")
			response, err := client.Chat(ctx, selected.ModelID, input, bedrock.Sampling{})
			if err != nil {
				fmt.Println("Could not get a response.")
				printInvokeError(err)
			} else {
				fmt.Println(response)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// selectModel prompts for a 1..N choice until it gets a valid one.
func selectModel(in *bufio.Scanner, models []bedrock.ModelSummary) (bedrock.ModelSummary, bool) {
	for {
		fmt.Printf("\nSelect a model (1-%d): ", len(models))
		if !in.Scan() {
			return bedrock.ModelSummary{}, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err != nil {
			fmt.Println("Please enter a valid number")
			continue
		}
		if n < 1 || n > len(models) {
			fmt.Printf("Please select a number between 1 and %d\n", len(models))
			continue
		}
		return models[n-1], true
	}
}

func isExit(input string) bool {
	switch strings.ToLower(input) {
	case "exit", "quit":
		return true
	}
	return false
}

// printInvokeError shows the failure plus the actionable hint when the
// remote cause has one. A failed turn never ends the conversation.
func printInvokeError(err error) {
	fmt.Printf("Error: %v\n", err)

	var ie *bedrock.InvokeError
	if errors.As(err, &ie) && ie.Hint() != "" {
		fmt.Printf("Suggestion: %s\n", ie.Hint())
	}
}
