package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/boards"
	"github.com/vovakirdan/tui-match3/internal/match3"
)

var boardsCmd = &cobra.Command{
	Use:   "boards [dir]",
	Short: "List board files",
	Long: `Shows the boards found in a directory (default: ./boards).
Files that fail to parse are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoards,
}

func runBoards(cmd *cobra.Command, args []string) error {
	dir := "boards"
	if len(args) == 1 {
		dir = args[0]
	}

	list, err := boards.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if len(list) == 0 {
		fmt.Fprintf(out, "No boards in %s.\n", dir)
		return nil
	}

	fmt.Fprintf(out, "Boards in %s:\n\n", dir)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, b := range list {
		if len(b.ID) > maxIDLen {
			maxIDLen = len(b.ID)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-6s  %-5s  %s\n", maxIDLen, "ID", "Size", "Moves", "Name")
	fmt.Fprintf(out, "  %-*s  %-6s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "----")

	for _, b := range list {
		moves := "-"
		if g, gridErr := b.Grid(); gridErr == nil {
			moves = fmt.Sprint(len(match3.FindMovables(g)))
		}
		fmt.Fprintf(out, "  %-*s  %-6s  %-5s  %s\n", maxIDLen, b.ID, fmt.Sprintf("%dx%d", b.Columns, b.Rows), moves, b.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'match3 analyze <file>' to inspect a board.")
	return nil
}
