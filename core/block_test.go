package core

import (
	"bytes"
	"testing"
	"time"
)

func emptyBlockBytes() []byte {
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0x00}, 20)) // previous
	putUint32(&buf, 0)                        // timestamp
	putString(&buf, "")                       // witness
	buf.Write(bytes.Repeat([]byte{0x00}, 20)) // merkle root
	buf.WriteByte(0)                          // block_extensions count
	buf.Write(bytes.Repeat([]byte{0x00}, 65)) // witness_signature
	buf.WriteByte(0)                          // transactions count
	putUint64(&buf, 0)                        // start_offset
	return buf.Bytes()
}

func TestDecodeBlockEmpty(t *testing.T) {
	c := cursorOf(emptyBlockBytes())
	blk, err := decodeBlock(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if blk.BlockNum != 1 {
		t.Fatalf("expected block_num 1, got %d", blk.BlockNum)
	}
	if blk.BlockID != "00000001" {
		t.Fatalf("expected block_id 00000001, got %s", blk.BlockID)
	}
	if len(blk.Transactions) != 0 {
		t.Fatalf("expected no transactions, got %d", len(blk.Transactions))
	}
	if len(blk.TransactionIDs) != 0 {
		t.Fatalf("expected no transaction ids, got %v", blk.TransactionIDs)
	}
	ts, ok := blk.Timestamp.(time.Time)
	if !ok || !ts.Equal(time.Unix(0, 0).UTC()) {
		t.Fatalf("unexpected timestamp: %v", blk.Timestamp)
	}
}

func TestDecodeBlockNumDerivation(t *testing.T) {
	var buf bytes.Buffer
	// previous[0:4] big-endian = 0x00000063 = 99 -> block_num = 100
	buf.Write([]byte{0x00, 0x00, 0x00, 0x63})
	buf.Write(bytes.Repeat([]byte{0x00}, 16))
	putUint32(&buf, 0)
	putString(&buf, "witness1")
	buf.Write(bytes.Repeat([]byte{0x00}, 20))
	buf.WriteByte(0)
	buf.Write(bytes.Repeat([]byte{0x00}, 65))
	buf.WriteByte(0)
	putUint64(&buf, 123)

	c := cursorOf(buf.Bytes())
	blk, err := decodeBlock(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if blk.BlockNum != 100 {
		t.Fatalf("expected block_num 100, got %d", blk.BlockNum)
	}
	if blk.BlockID != "00000064" {
		t.Fatalf("expected block_id 00000064, got %s", blk.BlockID)
	}
	if blk.StartOffset != 123 {
		t.Fatalf("expected start_offset 123, got %d", blk.StartOffset)
	}
}

func TestDecodeBlockStartOffsetIsPassedThrough(t *testing.T) {
	// decodeBlock does not recompute start_offset; it returns whatever the
	// producer wrote, whether or not it matches the block's real origin.
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0x00}, 20))
	putUint32(&buf, 0)
	putString(&buf, "")
	buf.Write(bytes.Repeat([]byte{0x00}, 20))
	buf.WriteByte(0)
	buf.Write(bytes.Repeat([]byte{0x00}, 65))
	buf.WriteByte(0)
	putUint64(&buf, 4096)

	c := cursorOf(buf.Bytes())
	blk, err := decodeBlock(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("decodeBlock: %v", err)
	}
	if blk.StartOffset != 4096 {
		t.Fatalf("expected start_offset 4096, got %d", blk.StartOffset)
	}
}
