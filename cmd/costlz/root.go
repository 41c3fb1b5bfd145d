package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lzforge/costlz/factor"
)

var diag = color.New(color.FgYellow)

var rootCmd = &cobra.Command{
	Use:   "costlz <filename> <COST>",
	Short: "Bounded-cost LZ-like factorization over an annotated suffix tree",
	Args:  cobra.ExactArgs(2),
	RunE:  runFactorize,
}

func init() {
	rootCmd.AddCommand(selftestCmd)
}

func runFactorize(cmd *cobra.Command, args []string) error {
	filename := args[0]
	cost, err := strconv.Atoi(args[1])
	if err != nil || cost <= 0 {
		return fmt.Errorf("%w: COST must be a positive integer, got %q", ErrInputInvalid, args[1])
	}

	input, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOFailure, err)
	}

	diag.Fprintf(os.Stderr, "costlz: factorizing %s (%d bytes, COST=%d)\n", filename, len(input), cost)

	f, err := factor.New(input, factor.WithCost(cost))
	if err != nil {
		return mapFactorErr(err)
	}

	phrases, err := f.Run()
	if err != nil {
		return mapFactorErr(err)
	}

	out := cmd.OutOrStdout()
	for _, p := range phrases {
		fmt.Fprintln(out, p.String())
	}
	fmt.Fprintf(out, "z=%d\n", len(phrases))

	diag.Fprintf(os.Stderr, "costlz: emitted %d phrases\n", len(phrases))
	return nil
}

func mapFactorErr(err error) error {
	switch {
	case errors.Is(err, factor.ErrEmptyInput), errors.Is(err, factor.ErrZeroByte):
		return fmt.Errorf("%w: %v", ErrInputInvalid, err)
	default:
		return fmt.Errorf("%w: %v", ErrInvariant, err)
	}
}
