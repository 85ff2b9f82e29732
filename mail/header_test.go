package mail

import "testing"

func TestReturnPath(t *testing.T) {
	mb, err := ParseMailbox("Bounce Handler <bounce@example.com>")
	if err != nil {
		t.Fatalf("ParseMailbox() error = %v", err)
	}

	h := ReturnPath{Mailbox: mb}

	if h.Name() != "Return-Path" {
		t.Errorf("Name() = %q, want Return-Path", h.Name())
	}
	// The display name is dropped: a return path carries only the address.
	if h.Body() != "<bounce@example.com>" {
		t.Errorf("Body() = %q, want <bounce@example.com>", h.Body())
	}
	if h.String() != "Return-Path: <bounce@example.com>" {
		t.Errorf("String() = %q", h.String())
	}
}

func TestFormatHeader(t *testing.T) {
	mb, err := ParseMailbox("<user@example.com>")
	if err != nil {
		t.Fatalf("ParseMailbox() error = %v", err)
	}

	var h Header = ReturnPath{Mailbox: mb}
	if got := FormatHeader(h); got != "Return-Path: <user@example.com>" {
		t.Errorf("FormatHeader() = %q", got)
	}
}
