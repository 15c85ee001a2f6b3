package main

import (
	"github.com/joshuapare/blockedit/filemodel"
	"github.com/spf13/cobra"
)

var (
	insertOffset uint64
	insertHex    string
	insertText   string
)

func init() {
	cmd := newInsertCmd()
	cmd.Flags().Uint64Var(&insertOffset, "offset", 0, "Offset to insert at (file length appends)")
	cmd.Flags().StringVar(&insertHex, "hex", "", "Payload as hex digits")
	cmd.Flags().StringVar(&insertText, "text", "", "Payload as literal text")
	rootCmd.AddCommand(cmd)
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <file>",
		Short: "Insert bytes and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := payloadFromFlags(insertHex, insertText)
			if err != nil {
				return err
			}

			m, err := openModel(args[0], filemodel.ReadWrite)
			if err != nil {
				return err
			}

			if err := m.Add(insertOffset, data); err != nil {
				m.Close()
				return err
			}

			printInfo("Inserted %d bytes at offset %d\n", len(data), insertOffset)
			return saveAndClose(m)
		},
	}
}
