package core

import "encoding/json"

// StreamRecord is one emitted operation record from Stream.
//
// When RawOps is true, only Raw is populated: {block_num, trx_num, op:
// [name, fields], timestamp}. Otherwise only Fields is populated: the
// operation's field_map augmented with type/timestamp/block_num/trx_num,
// with the augmented keys winning on name collision.
type StreamRecord struct {
	RawOps bool
	Raw    *RawStreamRecord
	Fields *FieldMap
}

// RawStreamRecord is the raw_ops=true record shape.
type RawStreamRecord struct {
	BlockNum  uint32        `json:"block_num"`
	TrxNum    int           `json:"trx_num"`
	Op        [2]interface{} `json:"op"`
	Timestamp interface{}   `json:"timestamp"`
}

// MarshalJSON renders either the raw or the augmented-field-map form,
// whichever this record holds.
func (r *StreamRecord) MarshalJSON() ([]byte, error) {
	if r.RawOps {
		return json.Marshal(r.Raw)
	}
	return json.Marshal(r.Fields)
}

// Stream filters the operations of Blocks(start, stop) by op_names (an
// empty set matches every operation) and returns them as a single-pass
// iterator in block/transaction/operation order.
type Stream struct {
	blocks   *BlockIterator
	opNames  map[string]bool
	rawOps   bool
	curBlock *Block
	trxIdx   int
	opIdx    int
	err      error
}

// NewStream builds a filtered operation stream over bl. opNames nil or
// empty matches all operations.
func NewStream(bl *BlockLog, start, stop uint32, opNames []string, rawOps bool) *Stream {
	var names map[string]bool
	if len(opNames) > 0 {
		names = make(map[string]bool, len(opNames))
		for _, n := range opNames {
			names[n] = true
		}
	}
	return &Stream{blocks: bl.Blocks(start, stop), opNames: names, rawOps: rawOps}
}

// Err returns the error that terminated the stream, if any.
func (s *Stream) Err() error { return s.err }

func (s *Stream) matches(name string) bool {
	if s.opNames == nil {
		return true
	}
	return s.opNames[name]
}

// Next returns the next matching operation record, or (nil, false) once
// the underlying block iterator is exhausted or errors.
func (s *Stream) Next() (*StreamRecord, bool) {
	for {
		if s.curBlock == nil {
			blk, ok := s.blocks.Next()
			if !ok {
				if err := s.blocks.Err(); err != nil {
					s.err = err
				}
				return nil, false
			}
			s.curBlock = blk
			s.trxIdx = 0
			s.opIdx = 0
		}

		if s.trxIdx >= len(s.curBlock.Transactions) {
			s.curBlock = nil
			continue
		}
		trx := s.curBlock.Transactions[s.trxIdx]
		if s.opIdx >= len(trx.Operations) {
			s.trxIdx++
			s.opIdx = 0
			continue
		}

		op := trx.Operations[s.opIdx]
		trxNum := s.trxIdx
		s.opIdx++

		if !s.matches(op.Name) {
			continue
		}

		if s.rawOps {
			return &StreamRecord{
				RawOps: true,
				Raw: &RawStreamRecord{
					BlockNum:  s.curBlock.BlockNum,
					TrxNum:    trxNum,
					Op:        [2]interface{}{op.Name, op.Fields},
					Timestamp: s.curBlock.Timestamp,
				},
			}, true
		}

		fields := newFieldMap(len(op.Fields.Keys()) + 4)
		for _, k := range op.Fields.Keys() {
			v, _ := op.Fields.Get(k)
			fields.Set(k, v)
		}
		fields.Set("type", op.Name)
		fields.Set("timestamp", s.curBlock.Timestamp)
		fields.Set("block_num", s.curBlock.BlockNum)
		fields.Set("trx_num", trxNum)
		return &StreamRecord{RawOps: false, Fields: fields}, true
	}
}
