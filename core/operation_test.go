package core

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeOperationVote(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(0) // op id: vote
	putString(&buf, "alice")
	putString(&buf, "bob")
	putString(&buf, "my-post")
	putUint16(&buf, 10000)

	c := cursorOf(buf.Bytes())
	op, err := DecodeOperation(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	if op.Name != "vote" {
		t.Fatalf("expected vote, got %s", op.Name)
	}
	voter, _ := op.Fields.Get("voter")
	if voter != "alice" {
		t.Fatalf("expected alice, got %v", voter)
	}
	if got := op.Fields.Keys(); len(got) != 4 || got[0] != "voter" || got[3] != "weight" {
		t.Fatalf("unexpected field order: %v", got)
	}
}

func TestDecodeOperationUnknownID(t *testing.T) {
	for _, id := range []byte{16, 21, 22, 23, 36, 37, 38, 42} {
		c := cursorOf([]byte{id})
		_, err := DecodeOperation(c, DefaultRenderConfig())
		if !errors.Is(err, ErrUnknownOperation) {
			t.Fatalf("op id %d: expected ErrUnknownOperation, got %v", id, err)
		}
	}
}

func TestDecodeOperationCustomJSONLists(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(18) // custom_json
	putVarint(&buf, 1)
	putString(&buf, "alice")
	putVarint(&buf, 0) // required_posting_auths empty
	putString(&buf, "follow")
	putString(&buf, `{"k":"v"}`)

	c := cursorOf(buf.Bytes())
	op, err := DecodeOperation(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	auths, _ := op.Fields.Get("required_auths")
	list, ok := auths.([]interface{})
	if !ok || len(list) != 1 || list[0] != "alice" {
		t.Fatalf("unexpected required_auths: %#v", auths)
	}
	postingAuths, _ := op.Fields.Get("required_posting_auths")
	if postingList, ok := postingAuths.([]interface{}); !ok || len(postingList) != 0 {
		t.Fatalf("expected empty required_posting_auths, got %#v", postingAuths)
	}
}

func TestDecodeOperationAccountUpdateOptionalAbsent(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(10) // account_update
	putString(&buf, "alice")
	buf.WriteByte(0) // owner absent
	buf.WriteByte(0) // active absent
	buf.WriteByte(0) // posting absent
	buf.Write(bytes.Repeat([]byte{0x01}, 33))
	putString(&buf, "")

	c := cursorOf(buf.Bytes())
	op, err := DecodeOperation(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	if _, ok := op.Fields.Get("owner"); ok {
		t.Fatalf("expected owner omitted when optpermission flag is false")
	}
	if _, ok := op.Fields.Get("memo_key"); !ok {
		t.Fatalf("expected memo_key present")
	}
}

func TestDecodeOperationAccountUpdateOptionalPresent(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteByte(10) // account_update
	putString(&buf, "alice")
	buf.WriteByte(1) // owner present
	putUint32(&buf, 1)
	buf.WriteByte(0) // 0 account auths
	buf.WriteByte(0) // 0 key auths
	buf.WriteByte(0) // active absent
	buf.WriteByte(0) // posting absent
	buf.Write(bytes.Repeat([]byte{0x01}, 33))
	putString(&buf, "")

	c := cursorOf(buf.Bytes())
	op, err := DecodeOperation(c, DefaultRenderConfig())
	if err != nil {
		t.Fatalf("DecodeOperation: %v", err)
	}
	owner, ok := op.Fields.Get("owner")
	if !ok {
		t.Fatalf("expected owner present")
	}
	if _, ok := owner.(Permission); !ok {
		t.Fatalf("expected Permission, got %T", owner)
	}
}
