// editexplorer is a read-only hex viewer for very large files, built on the
// same editor core as editctl. It pages through the file via the block
// chain, so opening a multi-gigabyte image is instant.
package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/blockedit/cmd/editexplorer/logger"
	"github.com/joshuapare/blockedit/filemodel"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	debugMode := false

	filtered := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filtered = append(filtered, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Close()

	if len(filtered) < 1 || filtered[0] == "--help" || filtered[0] == "-h" {
		printUsage()
		os.Exit(1)
	}
	if filtered[0] == "--version" {
		fmt.Printf("editexplorer %s\n", version)
		os.Exit(0)
	}

	path := filtered[0]
	logger.Info("starting editexplorer", "path", path, "debug", debugMode)

	m := filemodel.New(nil)
	if err := m.Open(path, filemodel.ReadOnly); err != nil {
		logger.Error("open failed", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	p := tea.NewProgram(newViewer(m), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: editexplorer [--debug] <file>

Keys:
  up/down, pgup/pgdn   scroll
  g / G                jump to start / end
  /                    search forward from the current position
  ?                    search backward from the current position
  n                    repeat the last search
  q                    quit
`)
}
