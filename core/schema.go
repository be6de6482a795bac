package core

// FieldType tags the wire shape of one operation field. Most tags map
// straight onto a primitive or composite decoder; TList and the Opt*
// variants are modifiers handled by the field loop in DecodeOperation.
type FieldType int

const (
	TUint8 FieldType = iota
	TUint16
	TUint32
	TUint64
	TBool
	TVarint
	TString
	THex               // varint-length-prefixed hex blob
	THex20             // fixed 20-byte hex (block/trx ids, prev_block)
	THex32             // fixed 32-byte hex (pow input/work, seeds)
	THex33             // fixed 33-byte hex (raw compressed pubkey, hex form only)
	THex65             // fixed 65-byte hex (signatures)
	TTimestamp
	TAmount
	TPubkey
	TOptPubkey // bool flag + TPubkey if set
	TPermission
	TOptPermission // bool flag + TPermission if set
	TProps
	TPowWork
	TBlockExtensions
	TBeneficiary
	TCommentOptionsExtension
	TExchangeRate
	TList // Elem gives the per-item type
)

// FieldSpec names one field of an operation schema, in wire order.
type FieldSpec struct {
	Name string
	Type FieldType
	Elem FieldType // meaningful only when Type == TList
}

// OperationSchema is the ordered field list for one operation id.
type OperationSchema struct {
	Name   string
	Fields []FieldSpec
}
