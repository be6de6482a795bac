package core

import "time"

// TimestampFormat selects how a decoded unix-seconds timestamp is rendered.
type TimestampFormat int

const (
	TimestampDatetime TimestampFormat = iota // decomposed UTC instant (time.Time)
	TimestampUnix                            // raw uint32 seconds since epoch
	TimestampString                          // "YYYY-MM-DDTHH:MM:SS", UTC, no offset
)

// AmountFormat selects how a decoded amount is rendered.
type AmountFormat int

const (
	AmountFormatStructured AmountFormat = iota // {amount: decimal, asset: symbol}
	AmountFormatString                         // "<amount to precision> <symbol>"
)

// KeyFormat selects how a decoded 33-byte compressed public key is rendered.
type KeyFormat int

const (
	KeyFormatHex    KeyFormat = iota // 66-char lowercase hex
	KeyFormatString                  // injected renderer's chain address string
)

// KeyRenderer is an injected pure function producing a chain address string
// (base58-with-checksum, chain-prefixed) from a compressed public key.
type KeyRenderer func(pubkey [33]byte) (string, error)

// RenderConfig is fixed for a reader's lifetime: it is validated once at
// open time and never mutated afterward.
type RenderConfig struct {
	TimestampFormat TimestampFormat
	AmountFormat    AmountFormat
	KeyFormat       KeyFormat

	// AmountFn, when set, overrides both built-in amount render forms.
	AmountFn AmountRenderer
	// KeyFn is required when KeyFormat is KeyFormatString.
	KeyFn KeyRenderer
}

// DefaultRenderConfig returns the package defaults: structured amounts, raw
// hex keys, decomposed UTC timestamps. A base58 KeyRenderer for the "STM"
// address prefix is pre-wired but inert until KeyFormat is switched to
// KeyFormatString.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		TimestampFormat: TimestampDatetime,
		AmountFormat:    AmountFormatStructured,
		KeyFormat:       KeyFormatHex,
		KeyFn:           NewBase58KeyRenderer("STM"),
	}
}

// Validate rejects a RenderConfig whose options fall outside their
// enumerated sets, or that selects KeyFormatString without a renderer.
func (rc RenderConfig) Validate() error {
	switch rc.TimestampFormat {
	case TimestampDatetime, TimestampUnix, TimestampString:
	default:
		return decodeErr(ErrConfigInvalid, 0, "timestamp_format %d", rc.TimestampFormat)
	}
	switch rc.AmountFormat {
	case AmountFormatStructured, AmountFormatString:
	default:
		return decodeErr(ErrConfigInvalid, 0, "amount_format %d", rc.AmountFormat)
	}
	switch rc.KeyFormat {
	case KeyFormatHex:
	case KeyFormatString:
		if rc.KeyFn == nil {
			return decodeErr(ErrConfigInvalid, 0, "key_format=string requires a KeyRenderer")
		}
	default:
		return decodeErr(ErrConfigInvalid, 0, "key_format %d", rc.KeyFormat)
	}
	return nil
}

// NewRenderConfig builds a RenderConfig from the string-valued options a
// config file or CLI flag set would supply. addressPrefix is only used
// when keyFormat is "string".
func NewRenderConfig(timestampFormat, amountFormat, keyFormat, addressPrefix string) (RenderConfig, error) {
	rc := RenderConfig{}
	switch timestampFormat {
	case "datetime", "":
		rc.TimestampFormat = TimestampDatetime
	case "unix":
		rc.TimestampFormat = TimestampUnix
	case "string":
		rc.TimestampFormat = TimestampString
	default:
		return RenderConfig{}, decodeErr(ErrConfigInvalid, 0, "timestamp_format %q", timestampFormat)
	}
	switch amountFormat {
	case "structured", "":
		rc.AmountFormat = AmountFormatStructured
	case "string":
		rc.AmountFormat = AmountFormatString
	default:
		return RenderConfig{}, decodeErr(ErrConfigInvalid, 0, "amount_format %q", amountFormat)
	}
	switch keyFormat {
	case "hex", "":
		rc.KeyFormat = KeyFormatHex
	case "string":
		rc.KeyFormat = KeyFormatString
		rc.KeyFn = NewBase58KeyRenderer(addressPrefix)
	default:
		return RenderConfig{}, decodeErr(ErrConfigInvalid, 0, "key_format %q", keyFormat)
	}
	if err := rc.Validate(); err != nil {
		return RenderConfig{}, err
	}
	return rc, nil
}

func decodeTimestamp(c *Cursor, rc RenderConfig) (interface{}, error) {
	unix, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	switch rc.TimestampFormat {
	case TimestampUnix:
		return unix, nil
	case TimestampString:
		return time.Unix(int64(unix), 0).UTC().Format("2006-01-02T15:04:05"), nil
	default:
		return time.Unix(int64(unix), 0).UTC(), nil
	}
}
