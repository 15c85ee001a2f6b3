package main

import (
	"fmt"
	"strconv"

	"github.com/joshuapare/blockedit/fsutil"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newRandomCmd(), newCopyCmd(), newDiffCmd())
}

func newRandomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random <file> <length>",
		Short: "Write a file of random bytes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}
			if err := fsutil.RandomFile(args[0], length); err != nil {
				return err
			}
			printInfo("Wrote %d random bytes to %s\n", length, args[0])
			return nil
		},
	}
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy <src> <dst>",
		Short: "Copy a regular file byte for byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return fsutil.Copy(args[0], args[1])
		},
	}
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "Compare two files byte for byte",
		Long: `The diff command exits 0 when the files are identical and 1 when they
differ. There is no detailed output; it answers equal or not.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			equal, err := fsutil.Diff(args[0], args[1])
			if err != nil {
				return err
			}
			if !equal {
				return fmt.Errorf("files %s and %s differ", args[0], args[1])
			}
			printInfo("Files are identical\n")
			return nil
		},
	}
}
