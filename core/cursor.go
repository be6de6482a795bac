package core

// Cursor is a (source, offset) pair advanced monotonically by codecs. It is
// passed by exclusive reference through every decode function in this
// package; there is no aliasing of a single cursor across goroutines.
type Cursor struct {
	src    ByteSource
	offset int64
}

// NewCursor positions a cursor at the start of src.
func NewCursor(src ByteSource) *Cursor {
	return &Cursor{src: src}
}

// Offset returns the cursor's current byte position.
func (c *Cursor) Offset() int64 { return c.offset }

// Seek repositions the cursor. Codecs never call this on themselves; it
// exists for the reader to position a fresh cursor before a decode.
func (c *Cursor) Seek(offset int64) { c.offset = offset }

// Len reports the length of the underlying source.
func (c *Cursor) Len() int64 { return c.src.Len() }

// Remaining reports how many bytes are left before the source ends.
func (c *Cursor) Remaining() int64 { return c.src.Len() - c.offset }

// take reads exactly n bytes and advances the cursor past them.
func (c *Cursor) take(n int64) ([]byte, error) {
	b, err := c.src.Slice(c.offset, n)
	if err != nil {
		return nil, err
	}
	c.offset += n
	return b, nil
}
