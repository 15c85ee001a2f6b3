package main

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/blockedit/filemodel"
)

// openModel opens path with the given mode and reports what happened in
// verbose mode.
func openModel(path string, mode filemodel.OpenMode) (*filemodel.Model, error) {
	printVerbose("Opening %s\n", path)

	m := filemodel.New(nil)
	if err := m.Open(path, mode); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return m, nil
}

// payloadFromFlags turns the --hex/--text flag pair into raw bytes.
func payloadFromFlags(hexStr, text string) ([]byte, error) {
	switch {
	case hexStr != "" && text != "":
		return nil, fmt.Errorf("--hex and --text are mutually exclusive")
	case hexStr != "":
		data, err := hex.DecodeString(hexStr)
		if err != nil {
			return nil, fmt.Errorf("invalid hex payload: %w", err)
		}
		return data, nil
	case text != "":
		return []byte(text), nil
	default:
		return nil, fmt.Errorf("one of --hex or --text is required")
	}
}

// saveAndClose flushes the model and releases it.
func saveAndClose(m *filemodel.Model) error {
	if err := m.Save(); err != nil {
		m.Close()
		return fmt.Errorf("failed to save: %w", err)
	}
	return m.Close()
}
