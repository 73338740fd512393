package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bedrockrag/internal/rag"
)

var sampleDocs = []string{
	"Amazon Bedrock is a fully managed service for foundation models.",
	"RAG systems combine retrieval and generation to improve responses.",
	"Embeddings are vector representations of text in high-dimensional spaces.",
	"Chroma is an efficient vector store for building AI applications.",
	"Foundation models can be fine-tuned for specific tasks and domains.",
	"Amazon Bedrock provides access to AI models from leading companies like Anthropic, AI21 Labs, and Amazon.",
	"RAG improves response accuracy by providing relevant context from stored knowledge.",
	"Embeddings enable searching for similar documents using cosine similarity.",
	"Claude is a language model developed by Anthropic available on Amazon Bedrock.",
	"RAG systems are especially useful for applications requiring domain-specific knowledge.",
}

var ragCmd = &cobra.Command{
	Use:   "rag",
	Short: "Interactive RAG session over a sample document collection",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println("Loading sample documents...")
		if err := a.service.AddDocuments(ctx, sampleDocs); err != nil {
			fmt.Printf("Error loading initial documents: %v\n", err)
			return nil
		}
		fmt.Printf("%d documents loaded successfully\n", len(sampleDocs))

		runMenu(ctx, a.service)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ragCmd)
}

func showMenu() {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("INTERACTIVE RAG SYSTEM - AMAZON BEDROCK")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("\nOptions:")
	fmt.Println("  1. Make a query with RAG")
	fmt.Println("  2. Make a query without RAG")
	fmt.Println("  3. Compare RAG vs Without RAG")
	fmt.Println("  4. Add new documents")
	fmt.Println("  5. View current documents")
	fmt.Println("  6. Exit")
	fmt.Println(strings.Repeat("=", 80))
}

func runMenu(ctx context.Context, service *rag.Service) {
	in := bufio.NewScanner(os.Stdin)

	for {
		showMenu()
		fmt.Print("\nSelect an option (1-6): ")
		if !in.Scan() {
			return
		}

		switch strings.TrimSpace(in.Text()) {
		case "1":
			query := promptQuery(in, "QUERY WITH RAG")
			if query == "" {
				break
			}
			fmt.Println("\nProcessing with RAG...")
			answer, err := service.AnswerWithContext(ctx, query, 3)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				break
			}
			printRetrieved(answer)
			printAnswer("Response:", answer.Text)

		case "2":
			query := promptQuery(in, "QUERY WITHOUT RAG")
			if query == "" {
				break
			}
			fmt.Println("\nProcessing without RAG...")
			answer, err := service.AnswerWithoutContext(ctx, query)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				break
			}
			printAnswer("Response:", answer.Text)

		case "3":
			query := promptQuery(in, "COMPARISON: RAG vs WITHOUT RAG")
			if query == "" {
				break
			}

			fmt.Println("\nProcessing with RAG...")
			withRAG, ragErr := service.AnswerWithContext(ctx, query, 3)
			if ragErr != nil {
				fmt.Printf("Error: %v\n", ragErr)
			} else {
				printRetrieved(withRAG)
			}

			fmt.Println("\nProcessing without RAG...")
			withoutRAG, plainErr := service.AnswerWithoutContext(ctx, query)
			if plainErr != nil {
				fmt.Printf("Error: %v\n", plainErr)
			}

			fmt.Println("\n" + strings.Repeat("=", 80))
			fmt.Println("COMPARISON RESULTS")
			fmt.Println(strings.Repeat("=", 80))
			if ragErr == nil {
				printAnswer("\nWITH RAG:", withRAG.Text)
			}
			if plainErr == nil {
				printAnswer("\nWITHOUT RAG:", withoutRAG.Text)
			}

		case "4":
			addDocuments(ctx, in, service)

		case "5":
			viewDocuments(ctx, service)

		case "6":
			fmt.Println("\nThank you for using the RAG System!")
			fmt.Println(strings.Repeat("=", 80) + "\n")
			return

		default:
			fmt.Println("\nInvalid option. Please select 1-6.")
		}

		fmt.Print("\nPress Enter to continue...")
		if !in.Scan() {
			return
		}
	}
}

func promptQuery(in *bufio.Scanner, header string) string {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println(header)
	fmt.Println(strings.Repeat("=", 80))
	fmt.Print("\nEnter your query: ")
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func printRetrieved(answer *rag.Answer) {
	if len(answer.Retrieved) == 0 {
		return
	}
	fmt.Println("\nRetrieved documents:")
	for i, doc := range answer.Retrieved {
		fmt.Printf("  %d. %s\n", i+1, doc.Text)
	}
}

func printAnswer(header, text string) {
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", 80))
	fmt.Println(text)
	fmt.Println(strings.Repeat("-", 80))
}

func addDocuments(ctx context.Context, in *bufio.Scanner, service *rag.Service) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("ADD NEW DOCUMENTS")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("\nEnter documents (one per line).")
	fmt.Println("Type 'DONE' when finished:")
	fmt.Println()

	var newDocs []string
	for {
		fmt.Printf("Document %d: ", len(newDocs)+1)
		if !in.Scan() {
			break
		}
		doc := strings.TrimSpace(in.Text())
		if strings.EqualFold(doc, "DONE") {
			break
		}
		if doc != "" {
			newDocs = append(newDocs, doc)
		}
	}

	if len(newDocs) == 0 {
		fmt.Println("No documents were added")
		return
	}

	fmt.Printf("\nAdding %d documents...\n", len(newDocs))
	if err := service.AddDocuments(ctx, newDocs); err != nil {
		fmt.Printf("Error adding documents: %v\n", err)
		return
	}
	fmt.Printf("%d documents added successfully\n", len(newDocs))
}

func viewDocuments(ctx context.Context, service *rag.Service) {
	docs, err := service.ListDocuments(ctx)
	if err != nil {
		fmt.Printf("Error getting documents: %v\n", err)
		return
	}

	if len(docs) == 0 {
		fmt.Println("\nNo documents in collection.")
		return
	}

	fmt.Printf("\nDocuments in collection (%d total):\n", len(docs))
	fmt.Println(strings.Repeat("-", 80))
	for i, doc := range docs {
		fmt.Printf("%d. %s\n", i+1, doc.Text)
	}
	fmt.Println(strings.Repeat("-", 80))
}
