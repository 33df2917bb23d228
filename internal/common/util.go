package common

// WipeByteArray zeroes the buffer in place. Use it to scrub passwords from
// memory once they are no longer needed. Safe on nil slices.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
