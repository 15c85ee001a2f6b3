package changelog

// Journal is an ordered, growable list of changes.
type Journal struct {
	changes []Change
}

// Append adds a copy of an arbitrary record.
func (j *Journal) Append(c Change) {
	j.register(c.Kind, c.Off, c.Old, c.New, c.Len)
}

// Modify appends a modify record. The journal keeps its own copies of old
// and new. Zero-length edits are not recorded.
func (j *Journal) Modify(off uint64, old, new []byte) {
	j.register(KindModify, off, old, new, uint64(len(new)))
}

// Add appends an insert record.
func (j *Journal) Add(off uint64, data []byte) {
	j.register(KindAdd, off, nil, data, uint64(len(data)))
}

// Remove appends a remove record. old carries the removed bytes; it may be
// nil for records replayed from disk, in which case length gives the record
// length.
func (j *Journal) Remove(off uint64, old []byte, length uint64) {
	j.register(KindRemove, off, old, nil, length)
}

func (j *Journal) register(k Kind, off uint64, old, new []byte, length uint64) {
	if length == 0 {
		return
	}

	c := Change{Kind: k, Off: off, Len: length}
	if old != nil {
		c.Old = append([]byte(nil), old...)
	}
	if new != nil {
		c.New = append([]byte(nil), new...)
	}
	j.changes = append(j.changes, c)
}

// DropLast removes the most recent record. It reports whether a record was
// removed.
func (j *Journal) DropLast() bool {
	if len(j.changes) == 0 {
		return false
	}
	j.changes = j.changes[:len(j.changes)-1]
	return true
}

// TruncateFrom discards every record at index >= pos.
func (j *Journal) TruncateFrom(pos int) {
	if pos < 0 || pos >= len(j.changes) {
		return
	}
	j.changes = j.changes[:pos]
}

// Len returns the number of records.
func (j *Journal) Len() int { return len(j.changes) }

// Get returns the record at index i, or nil if i is out of range.
func (j *Journal) Get(i int) *Change {
	if i < 0 || i >= len(j.changes) {
		return nil
	}
	return &j.changes[i]
}

// Clear discards all records.
func (j *Journal) Clear() { j.changes = nil }
