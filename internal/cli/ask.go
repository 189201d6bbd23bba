package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// askCmd represents the one-shot question command
var askCmd = &cobra.Command{
	Use:   "ask <question>...",
	Short: "Answer a single question and exit",
	Long: `Answer one question without entering the interactive loop.

Example:
  infobot ask what is the polar radius of mars
  infobot ask "where was Michael Jordan born?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	table := newDispatchTable()

	result, err := table.Dispatch(context.Background(), tokenize(strings.Join(args, " ")))
	if err != nil {
		return err
	}
	if result.Terminate {
		return nil
	}

	for _, answer := range result.Answers {
		fmt.Println(answer)
	}
	return nil
}
