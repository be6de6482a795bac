package core

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func transactionWithOps(t *testing.T, ops ...[]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	putUint16(&buf, 0)  // ref_block_num
	putUint32(&buf, 0)  // ref_block_prefix
	putUint32(&buf, 0)  // expiration
	putVarint(&buf, uint64(len(ops)))
	for _, op := range ops {
		buf.Write(op)
	}
	putVarint(&buf, 0) // extensions
	putVarint(&buf, 0) // signatures
	return buf.Bytes()
}

func voteOpBytes(voter, author, permlink string, weight uint16) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0)
	putString(&buf, voter)
	putString(&buf, author)
	putString(&buf, permlink)
	putUint16(&buf, weight)
	return buf.Bytes()
}

func transferOpBytes(from, to string, memo string) []byte {
	var buf bytes.Buffer
	buf.WriteByte(2)
	putString(&buf, from)
	putString(&buf, to)
	buf.Write(encodeAmountBytes(1000, 3, "STEEM"))
	putString(&buf, memo)
	return buf.Bytes()
}

func blockWithTransactions(prevNum uint32, startOffset uint64, trxs ...[]byte) []byte {
	var buf bytes.Buffer
	var prev [20]byte
	binary.BigEndian.PutUint32(prev[0:4], prevNum)
	buf.Write(prev[:])
	putUint32(&buf, 0)
	putString(&buf, "witness")
	buf.Write(bytes.Repeat([]byte{0x00}, 20))
	buf.WriteByte(0)
	buf.Write(bytes.Repeat([]byte{0x00}, 65))
	putVarint(&buf, uint64(len(trxs)))
	for _, trx := range trxs {
		buf.Write(trx)
	}
	putUint64(&buf, startOffset)
	return buf.Bytes()
}

func TestStreamFiltersByOpName(t *testing.T) {
	dir := t.TempDir()
	trx := transactionWithOps(t,
		voteOpBytes("alice", "bob", "post", 100),
		transferOpBytes("alice", "bob", "memo"),
	)
	blk := blockWithTransactions(0, 0, trx)
	path := filepath.Join(dir, "block_log")
	if err := os.WriteFile(path, blk, 0o600); err != nil {
		t.Fatalf("write block_log: %v", err)
	}

	bl, err := OpenBlockLog(path, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("OpenBlockLog: %v", err)
	}
	defer bl.Close()

	s := NewStream(bl, 0, 0, []string{"transfer"}, false)
	var seen int
	for {
		rec, ok := s.Next()
		if !ok {
			break
		}
		seen++
		typ, _ := rec.Fields.Get("type")
		if typ != "transfer" {
			t.Fatalf("expected only transfer ops, got %v", typ)
		}
	}
	if err := s.Err(); err != nil {
		t.Fatalf("stream error: %v", err)
	}
	if seen != 1 {
		t.Fatalf("expected 1 matching op, got %d", seen)
	}
}

func TestStreamRawOpsShape(t *testing.T) {
	dir := t.TempDir()
	trx := transactionWithOps(t, voteOpBytes("alice", "bob", "post", 100))
	blk := blockWithTransactions(0, 0, trx)
	path := filepath.Join(dir, "block_log")
	if err := os.WriteFile(path, blk, 0o600); err != nil {
		t.Fatalf("write block_log: %v", err)
	}

	bl, err := OpenBlockLog(path, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("OpenBlockLog: %v", err)
	}
	defer bl.Close()

	s := NewStream(bl, 0, 0, nil, true)
	rec, ok := s.Next()
	if !ok {
		t.Fatalf("expected one record")
	}
	if !rec.RawOps || rec.Raw == nil {
		t.Fatalf("expected raw record shape")
	}
	if rec.Raw.Op[0] != "vote" {
		t.Fatalf("expected op name vote, got %v", rec.Raw.Op[0])
	}
	if rec.Raw.BlockNum != 1 || rec.Raw.TrxNum != 0 {
		t.Fatalf("unexpected block_num/trx_num: %d/%d", rec.Raw.BlockNum, rec.Raw.TrxNum)
	}
}

func TestStreamFiltersAcrossTransactionsWithTrxNum(t *testing.T) {
	dir := t.TempDir()
	voteTrx := transactionWithOps(t, voteOpBytes("alice", "bob", "post", 100))
	transferTrx := transactionWithOps(t, transferOpBytes("alice", "bob", "memo"))
	blk := blockWithTransactions(0, 0, voteTrx, transferTrx)
	path := filepath.Join(dir, "block_log")
	if err := os.WriteFile(path, blk, 0o600); err != nil {
		t.Fatalf("write block_log: %v", err)
	}

	bl, err := OpenBlockLog(path, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("OpenBlockLog: %v", err)
	}
	defer bl.Close()

	s := NewStream(bl, 0, 0, []string{"transfer"}, false)
	rec, ok := s.Next()
	if !ok {
		t.Fatalf("expected one matching record")
	}
	typ, _ := rec.Fields.Get("type")
	trxNum, _ := rec.Fields.Get("trx_num")
	if typ != "transfer" || trxNum != 1 {
		t.Fatalf("expected transfer at trx_num=1, got type=%v trx_num=%v", typ, trxNum)
	}
	if _, ok := s.Next(); ok {
		t.Fatalf("expected exactly one matching record")
	}
}

func TestStreamAugmentsFieldMap(t *testing.T) {
	// vote has no field literally named "type", "timestamp", "block_num" or
	// "trx_num", so this exercises the augmentation path without a true
	// collision; a true collision would require a hypothetical op field
	// named identically to one of those, which the registry does not have.
	dir := t.TempDir()
	trx := transactionWithOps(t, voteOpBytes("alice", "bob", "post", 100))
	blk := blockWithTransactions(0, 0, trx)
	path := filepath.Join(dir, "block_log")
	if err := os.WriteFile(path, blk, 0o600); err != nil {
		t.Fatalf("write block_log: %v", err)
	}

	bl, err := OpenBlockLog(path, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("OpenBlockLog: %v", err)
	}
	defer bl.Close()

	s := NewStream(bl, 0, 0, nil, false)
	rec, ok := s.Next()
	if !ok {
		t.Fatalf("expected one record")
	}
	typ, _ := rec.Fields.Get("type")
	blockNum, _ := rec.Fields.Get("block_num")
	if typ != "vote" || blockNum != uint32(1) {
		t.Fatalf("unexpected augmented fields: type=%v block_num=%v", typ, blockNum)
	}
	voter, _ := rec.Fields.Get("voter")
	if voter != "alice" {
		t.Fatalf("expected original field voter=alice, got %v", voter)
	}
}
