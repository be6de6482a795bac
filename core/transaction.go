package core

// Transaction is one decoded transaction within a block.
type Transaction struct {
	RefBlockNum    uint16       `json:"ref_block_num"`
	RefBlockPrefix uint32       `json:"ref_block_prefix"`
	Expiration     interface{}  `json:"expiration"`
	Operations     []*Operation `json:"operations"`
	Extensions     []string     `json:"extensions"`
	Signatures     []string     `json:"signatures"`
}

func decodeTransaction(c *Cursor, rc RenderConfig) (*Transaction, error) {
	refBlockNum, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	refBlockPrefix, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	expiration, err := decodeTimestamp(c, rc)
	if err != nil {
		return nil, err
	}

	nOps, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	ops := make([]*Operation, 0, nOps)
	for i := 0; i < int(nOps); i++ {
		op, err := DecodeOperation(c, rc)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	nExt, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	extensions := make([]string, 0, nExt)
	for i := 0; i < int(nExt); i++ {
		s, err := c.ReadString()
		if err != nil {
			return nil, err
		}
		extensions = append(extensions, s)
	}

	nSig, err := c.ReadVarint()
	if err != nil {
		return nil, err
	}
	signatures := make([]string, 0, nSig)
	for i := 0; i < int(nSig); i++ {
		sig, err := c.ReadFixedHex(65)
		if err != nil {
			return nil, err
		}
		signatures = append(signatures, sig)
	}

	return &Transaction{
		RefBlockNum:    refBlockNum,
		RefBlockPrefix: refBlockPrefix,
		Expiration:     expiration,
		Operations:     ops,
		Extensions:     extensions,
		Signatures:     signatures,
	}, nil
}
