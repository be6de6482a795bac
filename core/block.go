package core

import (
	"encoding/hex"
	"fmt"
)

// Block is one decoded block, plus fields derived from it: BlockNum/BlockID
// come from the previous-block hash, TransactionIDs is a synthetic
// placeholder (no hashing is performed).
type Block struct {
	Previous              string         `json:"previous"`
	BlockNum              uint32         `json:"block_num"`
	BlockID               string         `json:"block_id"`
	Timestamp             interface{}    `json:"timestamp"`
	Witness               string         `json:"witness"`
	TransactionMerkleRoot string         `json:"transaction_merkle_root"`
	Extensions            []BlockExtension `json:"extensions"`
	WitnessSignature      string         `json:"witness_signature"`
	Transactions          []*Transaction `json:"transactions"`
	TransactionIDs        []int          `json:"transaction_ids"`
	StartOffset           uint64         `json:"start_offset"`
}

func blockNumFromPrevious(previousHex string) (uint32, error) {
	raw, err := hex.DecodeString(previousHex)
	if err != nil || len(raw) < 4 {
		return 0, fmt.Errorf("blocklog: malformed previous-block hash %q", previousHex)
	}
	be := uint32(raw[0])<<24 | uint32(raw[1])<<16 | uint32(raw[2])<<8 | uint32(raw[3])
	return be + 1, nil
}

func decodeBlock(c *Cursor, rc RenderConfig) (*Block, error) {
	previous, err := c.ReadFixedHex(20)
	if err != nil {
		return nil, err
	}
	blockNum, err := blockNumFromPrevious(previous)
	if err != nil {
		return nil, err
	}
	blockID := fmt.Sprintf("%08x", blockNum)

	timestamp, err := decodeTimestamp(c, rc)
	if err != nil {
		return nil, err
	}
	witness, err := c.ReadString()
	if err != nil {
		return nil, err
	}
	merkle, err := c.ReadFixedHex(20)
	if err != nil {
		return nil, err
	}
	extensions, err := decodeBlockExtensions(c, rc)
	if err != nil {
		return nil, err
	}
	sig, err := c.ReadFixedHex(65)
	if err != nil {
		return nil, err
	}

	nTrx, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	transactions := make([]*Transaction, 0, nTrx)
	for i := 0; i < int(nTrx); i++ {
		trx, err := decodeTransaction(c, rc)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, trx)
	}

	startOffset, err := c.ReadUint64()
	if err != nil {
		return nil, err
	}

	trxIDs := make([]int, len(transactions))
	for i := range trxIDs {
		trxIDs[i] = i
	}

	return &Block{
		Previous:              previous,
		BlockNum:              blockNum,
		BlockID:               blockID,
		Timestamp:             timestamp,
		Witness:               witness,
		TransactionMerkleRoot: merkle,
		Extensions:            extensions,
		WitnessSignature:      sig,
		Transactions:          transactions,
		TransactionIDs:        trxIDs,
		StartOffset:           startOffset,
	}, nil
}
