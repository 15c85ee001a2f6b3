package filemodel

// Remove deletes length bytes starting at off, shrinking the file. The
// range is clamped to the end of the file. Rejected on block devices.
func (m *Model) Remove(off, length uint64) error {
	return m.remove(off, length, true)
}

func (m *Model) remove(off, length uint64, record bool) error {
	if m.readOnly {
		return ErrReadOnly
	}
	if m.blockDevice {
		return ErrBlockDevice
	}

	b, pos, ok := m.seek(off)
	if !ok {
		return ErrInvalidOperation
	}

	if length == 0 {
		return nil
	}

	record = record && m.opts.UndoEnabled
	if record {
		// The journal carries the removed bytes, clamped to the end of the
		// file, so Undo can re-insert them.
		l := length
		if off+l > m.length {
			l = m.length - off
		}
		old := make([]byte, l)
		m.readFrom(b, pos, old)

		m.changes.TruncateFrom(m.nchange)
		m.changes.Remove(off, old, l)
	}

	if off+length > m.length {
		length = m.length - off
	}

	// Span contained in a single block.
	if n := pos + length; n < b.length {
		if !b.inMemory {
			if pos != 0 {
				// Split the mapped block around the hole.
				diskblk := &block{off: b.off + n, length: b.length - n}
				b.length = pos

				diskblk.prev = b
				diskblk.next = b.next
				diskblk.next.prev = diskblk
				b.next = diskblk
			} else {
				b.off += length
				b.length -= length
			}
		} else {
			copy(b.buf[pos:], b.buf[n:b.length])
			b.length -= length
		}

		m.finishRemove(length, record)
		return nil
	} else if n == b.length {
		// Span ends exactly at the block boundary.
		if pos == 0 {
			m.unlink(b)
		} else {
			b.length = pos
		}

		m.finishRemove(length, record)
		return nil
	}

	m.length -= length

	// Shrink the first block, then walk forward dropping whole blocks until
	// the final, partially covered one is trimmed from the left.
	if pos != 0 {
		length -= b.length - pos
		b.length = pos
		b = b.next
	}

	prev := b.prev

	for {
		if length >= b.length {
			next := b.next
			length -= b.length
			if b.inMemory {
				m.memoryUsed -= m.opts.MemoryBlockSize
			}
			b = next
		} else {
			if !b.inMemory {
				b.off += length
			} else {
				copy(b.buf, b.buf[length:b.length])
			}
			b.length -= length
			break
		}

		if length == 0 {
			break
		}
	}

	prev.next = b
	b.prev = prev

	m.modified = true
	m.sizeModified = true
	if record {
		m.nchange++
	}
	return nil
}

func (m *Model) finishRemove(length uint64, record bool) {
	m.length -= length
	m.modified = true
	m.sizeModified = true
	if record {
		m.nchange++
	}
}
