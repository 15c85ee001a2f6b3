// Package changelog records the edits applied to a file model.
//
// A Journal is an ordered list of Change records (modify, add, remove). The
// file model appends a record for every successful recorded edit and walks
// the list backwards and forwards to implement undo and redo. The journal
// owns copies of all byte payloads it is handed.
//
// Journals can be persisted in a line-oriented text format and replayed
// later:
//
//	Number of changes: 2.
//	Modify: offset: 16, length: 4.
//	6465616a
//	Remove: offset: 0, length: 8.
//
// Modify and Add records are followed by one line holding exactly twice as
// many hexadecimal digits as the record length; Remove records carry no
// payload line. See Journal.Save and Journal.Load.
//
// A Journal is NOT thread-safe. Only one goroutine should use it at a time.
package changelog
