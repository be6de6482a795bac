package core

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // graphene-style addresses are defined over ripemd160
)

// NewBase58KeyRenderer returns the default KeyRenderer: a Graphene/Steem
// style address, "<prefix><base58(pubkey || checksum[:4])>", where the
// checksum is the first four bytes of ripemd160(pubkey).
func NewBase58KeyRenderer(prefix string) KeyRenderer {
	return func(pubkey [33]byte) (string, error) {
		h := ripemd160.New()
		if _, err := h.Write(pubkey[:]); err != nil {
			return "", err
		}
		checksum := h.Sum(nil)[:4]
		payload := make([]byte, 0, 33+4)
		payload = append(payload, pubkey[:]...)
		payload = append(payload, checksum...)
		return prefix + base58.Encode(payload), nil
	}
}
