// Package fsutil holds the small file helpers the editor's tooling and
// tests lean on: byte-exact copy, byte-exact comparison and random fixture
// generation.
package fsutil
