package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lzforge/costlz/suffixtree"
)

var selftestCmd = &cobra.Command{
	Use:   "selftest <filename>",
	Short: "Build a suffix tree over filename and verify every substring is found",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelftest,
}

func runSelftest(cmd *cobra.Command, args []string) error {
	filename := args[0]
	input, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	tree, err := suffixtree.New(input, suffixtree.WithCost(1))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputInvalid, err)
	}

	ok, failure := tree.SelfTest()
	out := cmd.OutOrStdout()
	if !ok {
		color.New(color.FgRed).Fprintf(os.Stderr, "costlz selftest: FAIL: %s\n", failure)
		fmt.Fprintln(out, "FAIL")
		return fmt.Errorf("%w: %s", ErrInvariant, failure)
	}

	color.New(color.FgGreen).Fprintf(os.Stderr, "costlz selftest: PASS (%d leaves, %d substrings checked)\n",
		tree.LeafCount(), tree.Len()*(tree.Len()+1)/2)
	fmt.Fprintln(out, "PASS")
	return nil
}
