package core

import "fmt"

// KeyAuthority is a (pubkey, weight) pair.
type KeyAuthority struct {
	Key    interface{} `json:"key"`
	Weight uint16      `json:"weight"`
}

// AccountAuthority is an (account name, weight) pair.
type AccountAuthority struct {
	Account string `json:"account"`
	Weight  uint16 `json:"weight"`
}

// Permission is a weighted threshold over account and key authorities.
type Permission struct {
	WeightThreshold uint32             `json:"weight_threshold"`
	AccountAuths    []AccountAuthority `json:"account_auths"`
	KeyAuths        []KeyAuthority     `json:"key_auths"`
}

// Props carries a witness's chain-parameter proposal.
type Props struct {
	AccountCreationFee interface{} `json:"account_creation_fee"`
	MaximumBlockSize   uint32      `json:"maximum_block_size"`
	SbdInterestRate    uint16      `json:"sbd_interest_rate"`
}

// EquihashProof is the proof-of-work payload for a pow_work variant-1 entry.
type EquihashProof struct {
	N      uint32   `json:"n"`
	K      uint32   `json:"k"`
	Seed   string   `json:"seed"`
	Inputs []uint32 `json:"inputs"`
}

// PowWork is the tagged pow_work union. Proof is nil for variant 0.
type PowWork struct {
	Variant        uint8          `json:"variant"`
	WorkerAccount  string         `json:"worker_account"`
	PrevBlock      string         `json:"prev_block"`
	Nonce          uint64         `json:"nonce"`
	Proof          *EquihashProof `json:"proof,omitempty"`
	ProofPrevBlock string         `json:"proof_prev_block,omitempty"`
	PowSummary     uint32         `json:"pow_summary"`
}

// HFTimeExtension is a block_extensions entry tagged hf_format=1.
type HFTimeExtension struct {
	HFVersion string      `json:"hf_version"`
	HFTime    interface{} `json:"hf_time"`
}

// BlockExtension is one entry of the block_extensions list. Value is either
// a plain "M.m.r" string (hf_format=0) or an HFTimeExtension (hf_format=1).
type BlockExtension struct {
	Format uint8       `json:"format"`
	Value  interface{} `json:"value"`
}

// Beneficiary is a (account, weight) comment-payout split entry.
type Beneficiary struct {
	Account string `json:"account"`
	Weight  uint16 `json:"weight"`
}

// CommentOptionsExtension is the sole defined comment_options_extension
// variant (ext_id 0).
type CommentOptionsExtension struct {
	ExtID        uint8         `json:"ext_id"`
	Beneficiaries []Beneficiary `json:"beneficiaries"`
}

// ExchangeRate is a base/quote amount pair.
type ExchangeRate struct {
	Base  interface{} `json:"base"`
	Quote interface{} `json:"quote"`
}

func decodePubkey(c *Cursor, rc RenderConfig) (interface{}, error) {
	raw, err := c.ReadFixedBytes(33)
	if err != nil {
		return nil, err
	}
	if rc.KeyFormat == KeyFormatString {
		if rc.KeyFn == nil {
			return nil, decodeErr(ErrConfigInvalid, c.Offset(), "key_format=string requires a KeyRenderer")
		}
		var arr [33]byte
		copy(arr[:], raw)
		return rc.KeyFn(arr)
	}
	return bytesToHex(raw), nil
}

func decodeKeyAuthority(c *Cursor, rc RenderConfig) (KeyAuthority, error) {
	key, err := decodePubkey(c, rc)
	if err != nil {
		return KeyAuthority{}, err
	}
	weight, err := c.ReadUint16()
	if err != nil {
		return KeyAuthority{}, err
	}
	return KeyAuthority{Key: key, Weight: weight}, nil
}

func decodeAccountAuthority(c *Cursor) (AccountAuthority, error) {
	account, err := c.ReadString()
	if err != nil {
		return AccountAuthority{}, err
	}
	weight, err := c.ReadUint16()
	if err != nil {
		return AccountAuthority{}, err
	}
	return AccountAuthority{Account: account, Weight: weight}, nil
}

func decodePermission(c *Cursor, rc RenderConfig) (Permission, error) {
	threshold, err := c.ReadUint32()
	if err != nil {
		return Permission{}, err
	}
	nAccounts, err := c.ReadUint8()
	if err != nil {
		return Permission{}, err
	}
	accounts := make([]AccountAuthority, 0, nAccounts)
	for i := 0; i < int(nAccounts); i++ {
		a, err := decodeAccountAuthority(c)
		if err != nil {
			return Permission{}, err
		}
		accounts = append(accounts, a)
	}
	nKeys, err := c.ReadUint8()
	if err != nil {
		return Permission{}, err
	}
	keys := make([]KeyAuthority, 0, nKeys)
	for i := 0; i < int(nKeys); i++ {
		k, err := decodeKeyAuthority(c, rc)
		if err != nil {
			return Permission{}, err
		}
		keys = append(keys, k)
	}
	return Permission{WeightThreshold: threshold, AccountAuths: accounts, KeyAuths: keys}, nil
}

func decodeProps(c *Cursor, rc RenderConfig) (Props, error) {
	fee, err := decodeAmount(c, rc)
	if err != nil {
		return Props{}, err
	}
	maxBlockSize, err := c.ReadUint32()
	if err != nil {
		return Props{}, err
	}
	sbdRate, err := c.ReadUint16()
	if err != nil {
		return Props{}, err
	}
	return Props{AccountCreationFee: fee, MaximumBlockSize: maxBlockSize, SbdInterestRate: sbdRate}, nil
}

func decodePowWork(c *Cursor, rc RenderConfig) (PowWork, error) {
	start := c.Offset()
	variant, err := c.ReadUint8()
	if err != nil {
		return PowWork{}, err
	}
	if variant != 0 && variant != 1 {
		return PowWork{}, decodeErr(ErrUnknownTag, start, "pow_work variant %d", variant)
	}
	acct, err := c.ReadString()
	if err != nil {
		return PowWork{}, err
	}
	prevBlock, err := c.ReadFixedHex(20)
	if err != nil {
		return PowWork{}, err
	}
	nonce, err := c.ReadUint64()
	if err != nil {
		return PowWork{}, err
	}
	pw := PowWork{Variant: variant, WorkerAccount: acct, PrevBlock: prevBlock, Nonce: nonce}
	if variant == 1 {
		n, err := c.ReadUint32()
		if err != nil {
			return PowWork{}, err
		}
		k, err := c.ReadUint32()
		if err != nil {
			return PowWork{}, err
		}
		seed, err := c.ReadFixedHex(32)
		if err != nil {
			return PowWork{}, err
		}
		nInputs, err := c.ReadVarint()
		if err != nil {
			return PowWork{}, err
		}
		inputs := make([]uint32, 0, nInputs)
		for i := 0; i < int(nInputs); i++ {
			v, err := c.ReadUint32()
			if err != nil {
				return PowWork{}, err
			}
			inputs = append(inputs, v)
		}
		pw.Proof = &EquihashProof{N: n, K: k, Seed: seed, Inputs: inputs}
		pb2, err := c.ReadFixedHex(20)
		if err != nil {
			return PowWork{}, err
		}
		pw.ProofPrevBlock = pb2
	}
	summary, err := c.ReadUint32()
	if err != nil {
		return PowWork{}, err
	}
	pw.PowSummary = summary
	return pw, nil
}

func decodeBlockExtensions(c *Cursor, rc RenderConfig) ([]BlockExtension, error) {
	count, err := c.ReadUint8() // uint8 count, not varint, unlike every other list on the wire
	if err != nil {
		return nil, err
	}
	exts := make([]BlockExtension, 0, count)
	for i := 0; i < int(count); i++ {
		start := c.Offset()
		hfFormat, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		if hfFormat > 1 {
			return nil, decodeErr(ErrUnknownTag, start, "block_extensions hf_format %d", hfFormat)
		}
		major, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		minor, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		release, err := c.ReadUint16()
		if err != nil {
			return nil, err
		}
		hfVersion := fmt.Sprintf("%d.%d.%d", major, minor, release)
		switch hfFormat {
		case 0:
			exts = append(exts, BlockExtension{Format: 0, Value: hfVersion})
		case 1:
			hfTime, err := decodeTimestamp(c, rc)
			if err != nil {
				return nil, err
			}
			exts = append(exts, BlockExtension{Format: 1, Value: HFTimeExtension{HFVersion: hfVersion, HFTime: hfTime}})
		default:
			return nil, decodeErr(ErrUnknownTag, start, "block_extensions hf_format %d", hfFormat)
		}
	}
	return exts, nil
}

func decodeBeneficiary(c *Cursor) (Beneficiary, error) {
	account, err := c.ReadString()
	if err != nil {
		return Beneficiary{}, err
	}
	weight, err := c.ReadUint16()
	if err != nil {
		return Beneficiary{}, err
	}
	return Beneficiary{Account: account, Weight: weight}, nil
}

func decodeCommentOptionsExtension(c *Cursor) (CommentOptionsExtension, error) {
	start := c.Offset()
	extID, err := c.ReadUint8()
	if err != nil {
		return CommentOptionsExtension{}, err
	}
	if extID != 0 {
		return CommentOptionsExtension{}, decodeErr(ErrUnknownTag, start, "comment_options_extension id %d", extID)
	}
	n, err := c.ReadVarint()
	if err != nil {
		return CommentOptionsExtension{}, err
	}
	beneficiaries := make([]Beneficiary, 0, n)
	for i := 0; i < int(n); i++ {
		b, err := decodeBeneficiary(c)
		if err != nil {
			return CommentOptionsExtension{}, err
		}
		beneficiaries = append(beneficiaries, b)
	}
	return CommentOptionsExtension{ExtID: 0, Beneficiaries: beneficiaries}, nil
}

func decodeExchangeRate(c *Cursor, rc RenderConfig) (ExchangeRate, error) {
	base, err := decodeAmount(c, rc)
	if err != nil {
		return ExchangeRate{}, err
	}
	quote, err := decodeAmount(c, rc)
	if err != nil {
		return ExchangeRate{}, err
	}
	return ExchangeRate{Base: base, Quote: quote}, nil
}
