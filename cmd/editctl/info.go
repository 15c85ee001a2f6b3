package main

import (
	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show what the editor sees for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openModel(args[0], filemodel.ReadOnly)
			if err != nil {
				return err
			}
			defer m.Close()

			printInfo("File:         %s\n", m.Path())
			printInfo("Length:       %d bytes\n", m.Length())
			printInfo("Block device: %t\n", m.BlockDevice())
			return nil
		},
	}
}
