package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/blockedit/filemodel/changelog"
	"github.com/spf13/cobra"
)

var logDumpPayload bool

func init() {
	cmd := newLogCmd()
	cmd.Flags().BoolVar(&logDumpPayload, "payload", false, "Hex dump each record's payload")
	rootCmd.AddCommand(cmd)
}

func newLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <changes-file>",
		Short: "Pretty-print a change log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var j changelog.Journal
			if err := j.Load(args[0]); err != nil {
				return fmt.Errorf("failed to load change log %s: %w", args[0], err)
			}

			fmt.Printf("%d changes\n", j.Len())
			for i := 0; i < j.Len(); i++ {
				c := j.Get(i)
				fmt.Printf("%4d  %-6s offset %-12d length %d\n", i, c.Kind, c.Off, c.Len)
				if logDumpPayload && len(c.New) > 0 {
					hexDump(os.Stdout, c.Off, c.New, false)
				}
			}
			return nil
		},
	}
}
