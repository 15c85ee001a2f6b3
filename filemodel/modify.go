package filemodel

// Modify overwrites len(data) bytes starting at off. The range must lie
// inside the current length. Works on block devices.
func (m *Model) Modify(off uint64, data []byte) error {
	return m.modify(off, data, true)
}

func (m *Model) modify(off uint64, data []byte, record bool) error {
	if m.readOnly {
		return ErrReadOnly
	}

	length := uint64(len(data))
	if off+length > m.length {
		return ErrInvalidOperation
	}
	if length > m.opts.MaxMemoryUsed {
		return ErrChangeBiggerMaxMemoryUsed
	}

	b, pos, ok := m.seek(off)
	if !ok {
		// Empty file.
		return ErrInvalidOperation
	}

	if length == 0 {
		return nil
	}

	if m.memoryUsed+length > m.opts.MaxMemoryUsed {
		return ErrNeedSave
	}

	record = record && m.opts.UndoEnabled
	if record {
		old := make([]byte, length)
		m.readFrom(b, pos, old)

		m.changes.TruncateFrom(m.nchange)
		m.changes.Modify(off, old, data)
	}

	for {
		if !b.inMemory {
			b = m.materialize(b, pos, &data)
		} else {
			avail := b.length - pos
			l := uint64(len(data))
			if l > avail {
				l = avail
			}
			copy(b.buf[pos:], data[:l])
			data = data[l:]
			b = b.next
		}

		if len(data) == 0 {
			break
		}
		pos = 0
	}

	m.modified = true
	if record {
		m.nchange++
	}
	return nil
}

// materialize turns the region of the mapped block b around pos into a
// writable block, consuming as much of *data as fits. Up to half a block of
// existing content is copied in front of pos so that nearby edits reuse the
// same buffer, and any slack after the consumed bytes is filled from the
// mapped tail so no gap is created. It returns the block where copying
// continues.
func (m *Model) materialize(b *block, pos uint64, data *[]byte) *block {
	blockSize := m.opts.MemoryBlockSize
	buf := make([]byte, blockSize)

	// Prefix of existing content in front of the edit.
	var begin, count uint64
	if pos <= m.opts.midBlock() {
		begin = 0
		count = pos
	} else {
		begin = pos - m.opts.midBlock()
		count = m.opts.midBlock()
	}
	copy(buf, m.data[b.off+begin:b.off+pos])

	// User bytes, capped by both the buffer and the mapped block's tail.
	room := blockSize - count
	l := uint64(len(*data))
	if l > room {
		l = room
	}
	if pos+l > b.length {
		l = b.length - pos
	}
	copy(buf[count:], (*data)[:l])
	*data = (*data)[l:]
	count += l
	room -= l

	// Pad with the mapped tail so the chain stays gapless.
	if len(*data) == 0 && room > 0 {
		end := pos + l
		if end < b.length {
			tail := b.length - end
			if tail > room {
				tail = room
			}
			copy(buf[count:], m.data[b.off+end:b.off+end+tail])
			count += tail
		}
	}

	m.memoryUsed += blockSize

	if begin == 0 {
		if count == b.length {
			// The writable block replaces the mapped block outright.
			b.buf = buf
			b.inMemory = true
			return b.next
		}

		// Splice in front, trimming the mapped block from the left.
		memblk := &block{buf: buf, length: count, inMemory: true}
		b.off += count
		b.length -= count

		memblk.prev = b.prev
		memblk.prev.next = memblk
		memblk.next = b
		b.prev = memblk
		return b
	}

	memblk := &block{buf: buf, length: count, inMemory: true}

	var next *block
	if end := begin + count; end < b.length {
		// The mapped block keeps a right-hand remainder.
		diskblk := &block{off: b.off + end, length: b.length - end}
		diskblk.next = b.next
		diskblk.next.prev = diskblk
		memblk.next = diskblk
		diskblk.prev = memblk
		next = diskblk
	} else {
		memblk.next = b.next
		memblk.next.prev = memblk
		next = memblk.next
	}

	b.length = begin
	memblk.prev = b
	b.next = memblk
	return next
}
