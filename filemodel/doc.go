// Package filemodel implements an editable model of very large regular
// files and block devices.
//
// # Overview
//
// A Model exposes byte-level modify, insert and remove operations over a
// linear address space without ever loading the whole file. The backing file
// is memory-mapped and the current content is represented as a chain of
// blocks, each either a window into the original mapping or a small writable
// buffer. Multi-gigabyte files are edited with bounded memory: writable
// buffers are capped at 100 MiB in total by default, after which the caller
// is asked to save.
//
// # Key Types
//
//   - Model: the editor; owns the mapping, the block chain and the journal
//   - Options: construction parameters (undo, block size, memory cap)
//   - changelog.Journal: the undo/redo change journal (subpackage)
//
// # Lifecycle
//
//	m := filemodel.New(nil)
//	if err := m.Open("disk.img", filemodel.ReadWrite); err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	err := m.Modify(0x1000, []byte("patched"))
//	...
//	err = m.Save()
//
// Save writes changed bytes back in place when the file size is unchanged;
// otherwise it streams the chain through a temporary file and renames it
// over the original. Either way the model reopens the file afterwards and
// the chain collapses back to a single mapped block.
//
// # Editing rules
//
// Modify works on regular files and block devices; Add and Remove are
// rejected on block devices since they change the length. All editing
// operations are journalled (unless undo is disabled) and can be walked
// backwards and forwards with Undo and Redo.
//
// A Model is NOT thread-safe and not reentrant. Only one goroutine should
// use it at a time.
package filemodel
