package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
)

// replCmd represents the interactive query loop command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive query loop",
	Long: `Read questions from stdin one line at a time, answer each from the
subject's Wikipedia infobox, and loop until "bye", Ctrl-C or Ctrl-D.`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	table := newDispatchTable()

	// Ctrl-C cancels any in-flight fetch and ends the session cleanly.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Welcome to the random database!")

	scanner := bufio.NewScanner(os.Stdin)
	for ctx.Err() == nil {
		fmt.Println()
		fmt.Print("Your query? ")

		if !scanner.Scan() {
			break
		}

		result, err := table.Dispatch(ctx, tokenize(scanner.Text()))
		if err != nil {
			if ctx.Err() != nil {
				break
			}
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

	fmt.Println("\nSo long!")
	return nil
}

// tokenize turns one line of user input into a query: question marks
// stripped, lowercased, split on whitespace.
func tokenize(line string) []string {
	return strings.Fields(strings.ToLower(strings.ReplaceAll(line, "?", "")))
}
