package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// batchCmd represents the batch question-file command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Answer questions from a file, one per line",
	Long: `Read questions from a file (one per line, blank lines and #-comments
skipped) and answer them in order. Each question fully resolves before
the next starts. A "bye" line ends the batch early.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open questions file: %w", err)
	}
	defer func() { _ = f.Close() }()

	table := newDispatchTable()
	ctx := context.Background()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fmt.Printf("> %s\n", line)
		result, err := table.Dispatch(ctx, tokenize(line))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if result.Terminate {
			break
		}

		for _, answer := range result.Answers {
			fmt.Println(answer)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read questions file: %w", err)
	}
	return nil
}
