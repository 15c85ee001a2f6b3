// editctl edits large files in place from the command line: byte-level
// patch, insert and remove, substring search, change-log replay and the
// small fixture helpers (random/copy/diff).
package main

func main() {
	execute()
}
