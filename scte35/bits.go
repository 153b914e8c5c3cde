package scte35

import "fmt"

// bitReader reads bits MSB-first from a byte slice. The first read past the
// end of the buffer records a truncation error carrying the absolute bit
// offset; all subsequent reads return zero values and keep that error.
type bitReader struct {
	data   []byte
	bitPos int
	base   int // absolute bit offset of data[0] within the outermost buffer
	err    error
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) fail() {
	if r.err == nil {
		r.err = fmt.Errorf("%w at bit %d", ErrTruncatedInput, r.base+r.bitPos)
	}
}

// Err returns the first truncation error encountered, if any.
func (r *bitReader) Err() error {
	return r.err
}

func (r *bitReader) bitsLeft() int {
	total := len(r.data) * 8
	if r.bitPos > total {
		return 0
	}
	return total - r.bitPos
}

func (r *bitReader) readBit() bool {
	if r.err != nil {
		return false
	}
	if r.bitPos >= len(r.data)*8 {
		r.fail()
		return false
	}
	byteIdx := r.bitPos / 8
	bitIdx := 7 - (r.bitPos % 8)
	r.bitPos++
	return (r.data[byteIdx]>>uint(bitIdx))&1 == 1
}

func (r *bitReader) readUint32(n int) uint32 {
	var val uint32
	for i := 0; i < n; i++ {
		val <<= 1
		if r.readBit() {
			val |= 1
		}
	}
	if r.err != nil {
		return 0
	}
	return val
}

func (r *bitReader) readUint64(n int) uint64 {
	var val uint64
	for i := 0; i < n; i++ {
		val <<= 1
		if r.readBit() {
			val |= 1
		}
	}
	if r.err != nil {
		return 0
	}
	return val
}

func (r *bitReader) readBytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if r.bitsLeft() < n*8 {
		r.fail()
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = byte(r.readUint32(8))
	}
	return out
}

func (r *bitReader) skip(n int) {
	if r.err != nil {
		return
	}
	if r.bitsLeft() < n {
		r.fail()
		return
	}
	r.bitPos += n
}

// sliceBytes carves the next n bytes into a bounded sub-reader and advances
// this reader past them. The sub-reader keeps absolute bit offsets, so a
// nested decoder cannot over-read into a sibling region and its errors stay
// diagnosable. The caller must be byte-aligned.
func (r *bitReader) sliceBytes(n int) *bitReader {
	if r.err != nil {
		return &bitReader{err: r.err}
	}
	if r.bitPos%8 != 0 || r.bitsLeft() < n*8 {
		r.fail()
		return &bitReader{err: r.err}
	}
	start := r.bitPos / 8
	sub := &bitReader{
		data: r.data[start : start+n],
		base: r.base + r.bitPos,
	}
	r.bitPos += n * 8
	return sub
}
