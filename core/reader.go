package core

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// BlockLog reads blocks out of a flat append-only log file, using a
// sibling index_log file (when present) to resolve block numbers to byte
// offsets without a linear scan.
type BlockLog struct {
	log    ByteSource
	index  ByteSource // nil when index_log is absent
	render RenderConfig
	log_   *logrus.Entry
}

// OpenBlockLog mmaps path and, if present, a sibling file named
// "index_log" in the same directory. rc is validated and fixed for the
// reader's lifetime.
func OpenBlockLog(path string, rc RenderConfig) (*BlockLog, error) {
	if err := rc.Validate(); err != nil {
		return nil, err
	}
	logSrc, err := OpenMMapSource(path)
	if err != nil {
		return nil, err
	}

	var indexSrc ByteSource
	indexPath := filepath.Join(filepath.Dir(path), "index_log")
	if _, statErr := os.Stat(indexPath); statErr == nil {
		indexSrc, err = OpenMMapSource(indexPath)
		if err != nil {
			logSrc.Close()
			return nil, err
		}
	}

	return &BlockLog{
		log:    logSrc,
		index:  indexSrc,
		render: rc,
		log_:   logrus.WithField("component", "blocklog"),
	}, nil
}

// Close releases the mapped log and index files.
func (bl *BlockLog) Close() error {
	if bl.index != nil {
		if err := bl.index.Close(); err != nil {
			return err
		}
	}
	return bl.log.Close()
}

// HasIndex reports whether a sibling index_log was found at open time.
func (bl *BlockLog) HasIndex() bool { return bl.index != nil }

// offsetForBlockNumber resolves block number n (1-based) to its byte
// offset in the log via the index, or ErrIndexMissing if none was mapped.
func (bl *BlockLog) offsetForBlockNumber(n uint32) (int64, error) {
	if bl.index == nil {
		return 0, decodeErr(ErrIndexMissing, 0, "index_log not present")
	}
	if n == 0 {
		return 0, decodeErr(ErrIndexMissing, 0, "block numbers are 1-based")
	}
	entryOffset := int64(n-1) * 8
	b, err := bl.index.Slice(entryOffset, 8)
	if err != nil {
		return 0, decodeErr(ErrIndexMissing, entryOffset, "block %d not covered by index_log", n)
	}
	return int64(binary.LittleEndian.Uint64(b)), nil
}

// BlockAtOffset decodes exactly one block starting at offset.
func (bl *BlockLog) BlockAtOffset(offset int64) (*Block, error) {
	c := NewCursor(bl.log)
	c.Seek(offset)
	return decodeBlock(c, bl.render)
}

// BlockAtNumber decodes the block with the given 1-based block number,
// resolving its offset via index_log. Returns ErrIndexMissing if no
// index_log is mapped.
func (bl *BlockLog) BlockAtNumber(n uint32) (*Block, error) {
	offset, err := bl.offsetForBlockNumber(n)
	if err != nil {
		return nil, err
	}
	return bl.BlockAtOffset(offset)
}

// BlockIterator yields blocks in file order. A fresh BlockIterator starts
// at the beginning of the log (or, if start > 0 and an index is present,
// at that block's mapped offset); Next returns false once the cursor
// reaches the end of the log or a block's number exceeds stop.
type BlockIterator struct {
	bl     *BlockLog
	cursor *Cursor
	stop   uint32 // 0 means unbounded
	done   bool
	err    error
}

// Blocks returns a single-pass iterator over blocks in file order. start
// is advisory: when > 0 and an index is mapped, iteration seeks directly
// to that block; otherwise it reads from byte 0. stop, when nonzero,
// bounds iteration to block numbers <= stop.
func (bl *BlockLog) Blocks(start, stop uint32) *BlockIterator {
	c := NewCursor(bl.log)
	if start > 0 {
		if offset, err := bl.offsetForBlockNumber(start); err == nil {
			c.Seek(offset)
		}
	}
	return &BlockIterator{bl: bl, cursor: c, stop: stop}
}

// Next decodes and returns the next block, or (nil, false) when iteration
// is finished. A decode error terminates iteration; the caller inspects it
// via Err.
func (it *BlockIterator) Next() (*Block, bool) {
	if it.done || it.cursor.Remaining() <= 0 {
		it.done = true
		return nil, false
	}
	blk, err := decodeBlock(it.cursor, it.bl.render)
	if err != nil {
		it.done = true
		it.err = err
		return nil, false
	}
	if it.stop != 0 && blk.BlockNum > it.stop {
		it.done = true
		return nil, false
	}
	return blk, true
}

// Err returns the error that terminated iteration, if any.
func (it *BlockIterator) Err() error { return it.err }
