package filemodel

// Add inserts len(data) bytes at off, growing the file. off == Length()
// appends. Rejected on block devices.
func (m *Model) Add(off uint64, data []byte) error {
	return m.add(off, data, true)
}

func (m *Model) add(off uint64, data []byte, record bool) error {
	if m.readOnly {
		return ErrReadOnly
	}
	if m.blockDevice {
		return ErrBlockDevice
	}

	length := uint64(len(data))
	if length > m.opts.MaxMemoryUsed {
		return ErrChangeBiggerMaxMemoryUsed
	}

	b, pos, ok := m.seek(off)
	if !ok {
		if off != m.length {
			return ErrInvalidOperation
		}
		// Appending: continue after the last block. On an empty file this is
		// the sentinel itself with pos 0.
		b = m.header.prev
		pos = b.length
	}

	if length == 0 {
		return nil
	}

	if m.memoryUsed+length > m.opts.MaxMemoryUsed {
		return ErrNeedSave
	}

	record = record && m.opts.UndoEnabled
	if record {
		m.changes.TruncateFrom(m.nchange)
		m.changes.Add(off, data)
	}

	if b.inMemory {
		room := m.opts.MemoryBlockSize - b.length

		if length <= room {
			// Fits in the existing writable block: shift the suffix right and
			// copy in place.
			if n := b.length - pos; n > 0 {
				copy(b.buf[pos+length:b.length+length], b.buf[pos:b.length])
			}
			copy(b.buf[pos:], data)
			b.length += length

			m.length += length
			m.modified = true
			m.sizeModified = true
			if record {
				m.nchange++
			}
			return nil
		}

		if off == m.length && room > 0 {
			// Appending to the tail: top the block up, then splice the rest.
			copy(b.buf[pos:pos+room], data[:room])
			b.length += room
			data = data[room:]

			m.length += room
			off += room
			m.modified = true
			m.sizeModified = true
		}
	}

	first, last, nblocks := m.newBlockList(data)

	switch {
	case pos == 0:
		insertBefore(b, first, last)

	case off != m.length:
		// Split b at pos and place the new blocks in the middle. The right
		// half of a mapped block is just a narrower window; the right half of
		// a writable block gets its own buffer.
		l := b.length - pos
		var blk *block
		if b.inMemory {
			buf := make([]byte, m.opts.MemoryBlockSize)
			copy(buf, b.buf[pos:b.length])
			blk = &block{buf: buf, length: l, inMemory: true}
			nblocks++
		} else {
			blk = &block{off: b.off + pos, length: l}
		}
		b.length -= l

		blk.prev = last
		last.next = blk
		blk.next = b.next
		blk.next.prev = blk

		b.next = first
		first.prev = b

	default:
		// Append at the very end.
		first.prev = b
		b.next = first
		last.next = &m.header
		m.header.prev = last
	}

	m.length += uint64(len(data))
	m.memoryUsed += nblocks * m.opts.MemoryBlockSize

	m.modified = true
	m.sizeModified = true
	if record {
		m.nchange++
	}
	return nil
}
