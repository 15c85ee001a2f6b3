package filemodel

import "fmt"

// block is one link of the piece chain. A mapped block is a window into the
// file mapping, identified by an offset so that remapping never invalidates
// it. An in-memory block owns a writable buffer of MemoryBlockSize capacity
// of which the first length bytes are live.
type block struct {
	off      uint64 // window start in the mapping (mapped blocks)
	buf      []byte // writable buffer (in-memory blocks)
	length   uint64
	inMemory bool

	prev, next *block
}

// bytes returns the live payload of b.
func (m *Model) bytes(b *block) []byte {
	if b.inMemory {
		return b.buf[:b.length]
	}
	return m.data[b.off : b.off+b.length]
}

// seek locates the block containing off. It fails iff off >= length. When
// off falls on a block boundary the block starting at off is returned with
// pos 0, never its predecessor.
func (m *Model) seek(off uint64) (b *block, pos uint64, ok bool) {
	if off >= m.length {
		return nil, 0, false
	}

	n := uint64(0)
	for blk := m.header.next; blk != &m.header; blk = blk.next {
		next := n + blk.length
		if off < next {
			return blk, off - n, true
		}
		n = next
	}
	return nil, 0, false
}

// readFrom copies bytes into p starting at (b, pos), walking successor
// blocks until p is full or the chain ends. It returns the bytes copied.
func (m *Model) readFrom(b *block, pos uint64, p []byte) int {
	written := 0
	for b != &m.header && written < len(p) {
		written += copy(p[written:], m.bytes(b)[pos:])
		b = b.next
		pos = 0
	}
	return written
}

// newBlockList builds a detached list of in-memory blocks holding data, each
// of MemoryBlockSize capacity. It returns the ends of the list and the
// number of blocks built.
func (m *Model) newBlockList(data []byte) (first, last *block, nblocks uint64) {
	for len(data) > 0 {
		l := uint64(len(data))
		if l > m.opts.MemoryBlockSize {
			l = m.opts.MemoryBlockSize
		}

		buf := make([]byte, m.opts.MemoryBlockSize)
		copy(buf, data[:l])
		data = data[l:]

		b := &block{buf: buf, length: l, inMemory: true}
		if last == nil {
			first = b
		} else {
			last.next = b
			b.prev = last
		}
		last = b
		nblocks++
	}
	return first, last, nblocks
}

// insertBefore links the detached list [first, last] in front of b.
func insertBefore(b, first, last *block) {
	first.prev = b.prev
	first.prev.next = first
	last.next = b
	b.prev = last
}

// unlink removes b from the chain and releases its accounting.
func (m *Model) unlink(b *block) {
	b.prev.next = b.next
	b.next.prev = b.prev
	if b.inMemory {
		m.memoryUsed -= m.opts.MemoryBlockSize
	}
}

// freeChain drops every block and resets the sentinel, adjusting the memory
// accounting for in-memory blocks.
func (m *Model) freeChain() {
	for b := m.header.next; b != &m.header; b = b.next {
		if b.inMemory {
			m.memoryUsed -= m.opts.MemoryBlockSize
		}
	}
	m.header.prev = &m.header
	m.header.next = &m.header
}

// Verify checks the structural invariants of the model: block lengths sum to
// the logical length, memory accounting matches the number of writable
// blocks, every block is non-empty and within bounds. Intended for tests.
func (m *Model) Verify() error {
	var sum uint64
	var owned uint64

	for b := m.header.next; b != &m.header; b = b.next {
		if b.length == 0 {
			return fmt.Errorf("filemodel: empty block in chain")
		}
		if b.inMemory {
			if uint64(len(b.buf)) != m.opts.MemoryBlockSize {
				return fmt.Errorf("filemodel: writable block has capacity %d, want %d",
					len(b.buf), m.opts.MemoryBlockSize)
			}
			if b.length > m.opts.MemoryBlockSize {
				return fmt.Errorf("filemodel: writable block length %d exceeds capacity", b.length)
			}
			owned++
		} else {
			if b.off+b.length > m.fileSize {
				return fmt.Errorf("filemodel: mapped block [%d, %d) outside file of %d bytes",
					b.off, b.off+b.length, m.fileSize)
			}
		}
		if b.next.prev != b || b.prev.next != b {
			return fmt.Errorf("filemodel: broken chain links")
		}
		sum += b.length
	}

	if sum != m.length {
		return fmt.Errorf("filemodel: block lengths sum to %d, length is %d", sum, m.length)
	}
	if want := owned * m.opts.MemoryBlockSize; want != m.memoryUsed {
		return fmt.Errorf("filemodel: memory used is %d, %d writable blocks account for %d",
			m.memoryUsed, owned, want)
	}
	return nil
}
