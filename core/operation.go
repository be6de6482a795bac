package core

import (
	"bytes"
	"encoding/json"
)

// FieldMap is an insertion-ordered string-keyed map. Operation and block
// field order is wire order, not alphabetical, and callers rely on it for
// stable JSON rendering.
type FieldMap struct {
	keys   []string
	values map[string]interface{}
}

func newFieldMap(capacity int) *FieldMap {
	return &FieldMap{keys: make([]string, 0, capacity), values: make(map[string]interface{}, capacity)}
}

// Set appends key/value, or overwrites in place if key is already present.
func (m *FieldMap) Set(key string, value interface{}) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *FieldMap) Get(key string) (interface{}, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns field names in insertion (wire) order.
func (m *FieldMap) Keys() []string {
	return m.keys
}

// MarshalJSON renders fields as a JSON object, preserving wire order.
func (m *FieldMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Operation is one decoded operation: its canonical name plus its fields
// in schema order.
type Operation struct {
	Name   string    `json:"-"`
	Fields *FieldMap `json:"-"`
}

// MarshalJSON renders an Operation as ["name", {field: value, ...}].
func (o *Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{o.Name, o.Fields})
}

// decodeValue dispatches a single scalar or composite field by FieldType.
// TList and the Opt* modifiers are handled by the caller, since they wrap
// an inner decode rather than naming one directly.
func decodeValue(c *Cursor, rc RenderConfig, ft FieldType) (interface{}, error) {
	switch ft {
	case TUint8:
		return c.ReadUint8()
	case TUint16:
		return c.ReadUint16()
	case TUint32:
		return c.ReadUint32()
	case TUint64:
		return c.ReadUint64()
	case TBool:
		return c.ReadBool()
	case TVarint:
		return c.ReadVarint()
	case TString:
		return c.ReadString()
	case THex:
		return c.ReadHex()
	case THex20:
		return c.ReadFixedHex(20)
	case THex32:
		return c.ReadFixedHex(32)
	case THex33:
		return c.ReadFixedHex(33)
	case THex65:
		return c.ReadFixedHex(65)
	case TTimestamp:
		return decodeTimestamp(c, rc)
	case TAmount:
		return decodeAmount(c, rc)
	case TPubkey:
		return decodePubkey(c, rc)
	case TPermission:
		return decodePermission(c, rc)
	case TProps:
		return decodeProps(c, rc)
	case TPowWork:
		return decodePowWork(c, rc)
	case TBlockExtensions:
		return decodeBlockExtensions(c, rc)
	case TCommentOptionsExtension:
		return decodeCommentOptionsExtension(c)
	case TExchangeRate:
		return decodeExchangeRate(c, rc)
	default:
		return nil, decodeErr(ErrUnknownTag, c.Offset(), "unhandled field type %d", ft)
	}
}

// decodeListElem decodes one element of a TList field, handling the
// element types that appear as list members across the registry.
func decodeListElem(c *Cursor, rc RenderConfig, elem FieldType) (interface{}, error) {
	if elem == TCommentOptionsExtension {
		return decodeCommentOptionsExtension(c)
	}
	return decodeValue(c, rc, elem)
}

func decodeField(c *Cursor, rc RenderConfig, spec FieldSpec) (interface{}, bool, error) {
	switch spec.Type {
	case TList:
		n, err := c.ReadVarint()
		if err != nil {
			return nil, false, err
		}
		items := make([]interface{}, 0, n)
		for i := 0; i < int(n); i++ {
			v, err := decodeListElem(c, rc, spec.Elem)
			if err != nil {
				return nil, false, err
			}
			items = append(items, v)
		}
		return items, true, nil
	case TOptPubkey:
		present, err := c.ReadBool()
		if err != nil {
			return nil, false, err
		}
		if !present {
			return nil, false, nil
		}
		v, err := decodePubkey(c, rc)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	case TOptPermission:
		present, err := c.ReadBool()
		if err != nil {
			return nil, false, err
		}
		if !present {
			return nil, false, nil
		}
		v, err := decodePermission(c, rc)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	default:
		v, err := decodeValue(c, rc, spec.Type)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil
	}
}

// DecodeOperation reads a uint8 operation id and its fields in schema
// order, returning ErrUnknownOperation for an id with no registered
// schema (including the deliberate gaps at 16/21/22/23/36/37/38).
func DecodeOperation(c *Cursor, rc RenderConfig) (*Operation, error) {
	start := c.Offset()
	id, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	schema, ok := operationSchemas[int(id)]
	if !ok {
		return nil, decodeErr(ErrUnknownOperation, start, "operation id %d", id)
	}
	fields := newFieldMap(len(schema.Fields))
	for _, spec := range schema.Fields {
		v, present, err := decodeField(c, rc, spec)
		if err != nil {
			return nil, err
		}
		if present {
			fields.Set(spec.Name, v)
		}
	}
	return &Operation{Name: schema.Name, Fields: fields}, nil
}
