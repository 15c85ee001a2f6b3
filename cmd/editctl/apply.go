package main

import (
	"fmt"

	"github.com/joshuapare/blockedit/filemodel"
	"github.com/joshuapare/blockedit/filemodel/changelog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newApplyCmd())
}

func newApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <file> <changes-file>",
		Short: "Replay a change log against a file and save",
		Long: `The apply command loads a change log (as written by the editor's journal)
and replays every record against the file in order, then saves.

Example:
  editctl apply disk.img changes.log`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var j changelog.Journal
			if err := j.Load(args[1]); err != nil {
				return fmt.Errorf("failed to load change log %s: %w", args[1], err)
			}
			printVerbose("Loaded %d changes\n", j.Len())

			m, err := openModel(args[0], filemodel.ReadWrite)
			if err != nil {
				return err
			}

			for i := 0; i < j.Len(); i++ {
				c := j.Get(i)

				var err error
				switch c.Kind {
				case changelog.KindModify:
					err = m.Modify(c.Off, c.New)
				case changelog.KindAdd:
					err = m.Add(c.Off, c.New)
				case changelog.KindRemove:
					err = m.Remove(c.Off, c.Len)
				}
				if err != nil {
					m.Close()
					return fmt.Errorf("change %d (%s at %d): %w", i, c.Kind, c.Off, err)
				}
			}

			printInfo("Applied %d changes\n", j.Len())
			return saveAndClose(m)
		},
	}
}
