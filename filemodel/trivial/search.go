package trivial

import "bytes"

func indexOf(haystack, needle []byte) int {
	return bytes.Index(haystack, needle)
}

// lastIndexAtOrBefore finds the rightmost occurrence of needle starting at
// an index <= limit.
func lastIndexAtOrBefore(haystack, needle []byte, limit uint64) int {
	end := limit + uint64(len(needle))
	if end > uint64(len(haystack)) {
		end = uint64(len(haystack))
	}
	return bytes.LastIndex(haystack[:end], needle)
}
