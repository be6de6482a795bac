package core

import (
	"errors"
	"testing"
)

func TestValidateRejectsUnknownEnumValues(t *testing.T) {
	rc := DefaultRenderConfig()
	rc.TimestampFormat = TimestampFormat(99)
	if err := rc.Validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bad timestamp_format, got %v", err)
	}

	rc = DefaultRenderConfig()
	rc.AmountFormat = AmountFormat(99)
	if err := rc.Validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bad amount_format, got %v", err)
	}

	rc = DefaultRenderConfig()
	rc.KeyFormat = KeyFormat(99)
	if err := rc.Validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bad key_format, got %v", err)
	}
}

func TestValidateRejectsStringKeyFormatWithoutRenderer(t *testing.T) {
	rc := RenderConfig{KeyFormat: KeyFormatString}
	if err := rc.Validate(); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for key_format=string without KeyFn, got %v", err)
	}
}

func TestNewRenderConfigDefaults(t *testing.T) {
	rc, err := NewRenderConfig("", "", "", "")
	if err != nil {
		t.Fatalf("NewRenderConfig: %v", err)
	}
	if rc.TimestampFormat != TimestampDatetime || rc.AmountFormat != AmountFormatStructured || rc.KeyFormat != KeyFormatHex {
		t.Fatalf("unexpected defaults: %+v", rc)
	}
}

func TestNewRenderConfigStringKeyFormatWiresRenderer(t *testing.T) {
	rc, err := NewRenderConfig("unix", "string", "string", "STM")
	if err != nil {
		t.Fatalf("NewRenderConfig: %v", err)
	}
	if rc.KeyFn == nil {
		t.Fatalf("expected KeyFn to be wired for key_format=string")
	}
	var pk [33]byte
	pk[0] = 0x02
	addr, err := rc.KeyFn(pk)
	if err != nil || addr == "" {
		t.Fatalf("expected a renderable address, got %q, %v", addr, err)
	}
}

func TestNewRenderConfigRejectsUnknownOption(t *testing.T) {
	if _, err := NewRenderConfig("bogus", "", "", ""); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bogus timestamp_format, got %v", err)
	}
	if _, err := NewRenderConfig("", "bogus", "", ""); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bogus amount_format, got %v", err)
	}
	if _, err := NewRenderConfig("", "", "bogus", ""); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for bogus key_format, got %v", err)
	}
}
