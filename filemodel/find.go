package filemodel

import "bytes"

// The search is a naive scan, but a match may start in one block and
// continue through any number of successors, so each candidate position near
// a block boundary is checked piecewise across the chain.

func (m *Model) findForward(off uint64, needle []byte) (uint64, bool) {
	needlelen := uint64(len(needle))
	if off+needlelen > m.length {
		return 0, false
	}
	if needlelen == 0 {
		return 0, false
	}

	b, pos, ok := m.seek(off)
	if !ok {
		return 0, false
	}

	// Make off point to the beginning of the block.
	off -= pos

	for {
		// Matches lying entirely inside this block.
		if pos+needlelen <= b.length {
			data := m.bytes(b)
			if i := bytes.Index(data[pos:], needle); i >= 0 {
				return off + pos + uint64(i), true
			}
			pos = b.length - needlelen + 1
		}

		if b.next == &m.header {
			return 0, false
		}

		// Matches starting in this block and straddling into successors.
		data := m.bytes(b)
		for left := b.length - pos; left > 0; left, pos = left-1, pos+1 {
			if !bytes.Equal(data[pos:pos+left], needle[:left]) {
				continue
			}

			rest := needlelen - left
			idx := left
			nb := b.next
			for {
				nbdata := m.bytes(nb)
				if rest <= nb.length {
					if bytes.Equal(nbdata[:rest], needle[idx:idx+rest]) {
						return off + pos, true
					}
					break
				}
				if !bytes.Equal(nbdata, needle[idx:idx+nb.length]) {
					break
				}
				idx += nb.length
				rest -= nb.length
				nb = nb.next
				if nb == &m.header {
					// Fewer bytes remain than the needle needs; no later
					// candidate can match either.
					return 0, false
				}
			}
		}

		off += b.length
		b = b.next
		pos = 0
	}
}

func (m *Model) findBackward(off uint64, needle []byte) (uint64, bool) {
	needlelen := uint64(len(needle))
	if needlelen > m.length {
		return 0, false
	}
	if needlelen == 0 {
		return 0, false
	}

	var b *block
	var pos uint64

	if off+needlelen >= m.length {
		// Scanning from the end: start past the last block.
		b = m.header.prev
		pos = b.length
		off = m.length - b.length
	} else {
		off += needlelen

		var ok bool
		b, pos, ok = m.seek(off)
		if !ok {
			return 0, false
		}
		off -= pos
	}

	for {
		// Matches ending at or before pos inside this block.
		if needlelen <= pos {
			data := m.bytes(b)
			for i := pos - needlelen; ; i-- {
				if bytes.Equal(data[i:i+needlelen], needle) {
					return off + i, true
				}
				if i == 0 {
					break
				}
			}
			pos = needlelen - 1
		}

		if b.prev == &m.header {
			return 0, false
		}
		off -= b.prev.length

		// Matches ending in this block and straddling into predecessors.
		data := m.bytes(b)
		for left := pos; left > 0; left-- {
			rest := needlelen - left
			if !bytes.Equal(data[:left], needle[rest:]) {
				continue
			}

			tmpoff := off
			pb := b.prev
			for {
				pbdata := m.bytes(pb)
				if rest <= pb.length {
					idx := pb.length - rest
					if bytes.Equal(pbdata[idx:], needle[:rest]) {
						return tmpoff + idx, true
					}
					break
				}
				if !bytes.Equal(pbdata, needle[rest-pb.length:rest]) {
					break
				}
				rest -= pb.length
				pb = pb.prev
				if pb == &m.header {
					return 0, false
				}
				tmpoff -= pb.length
			}
		}

		b = b.prev
		pos = b.length
	}
}
