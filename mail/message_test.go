package mail

import (
	"errors"
	"strings"
	"testing"
)

func testAddress(t *testing.T, s string) Address {
	t.Helper()
	addr, err := ParseAddress(s)
	if err != nil {
		t.Fatalf("ParseAddress(%q) error = %v", s, err)
	}
	return addr
}

func TestMessageBuilder(t *testing.T) {
	from := testAddress(t, "alice@example.com")
	to := testAddress(t, "bob@example.org")

	b := NewMessageBuilder()
	if err := b.SetFrom(from); err != nil {
		t.Fatalf("SetFrom() error = %v", err)
	}
	if err := b.SetTo(to); err != nil {
		t.Fatalf("SetTo() error = %v", err)
	}

	msg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if msg.From() != from {
		t.Errorf("From() = %v, want %v", msg.From(), from)
	}
	if msg.To() != to {
		t.Errorf("To() = %v, want %v", msg.To(), to)
	}
}

func TestMessageBuilder_OrderIndependent(t *testing.T) {
	from := testAddress(t, "alice@example.com")
	to := testAddress(t, "bob@example.org")

	b := NewMessageBuilder()
	if err := b.SetTo(to); err != nil {
		t.Fatalf("SetTo() error = %v", err)
	}
	if err := b.SetFrom(from); err != nil {
		t.Fatalf("SetFrom() error = %v", err)
	}
	if _, err := b.Build(); err != nil {
		t.Errorf("Build() error = %v", err)
	}
}

func TestMessageBuilder_BuildIncomplete(t *testing.T) {
	from := testAddress(t, "alice@example.com")

	tests := []struct {
		name    string
		prepare func(b *MessageBuilder)
		missing string
	}{
		{"nothing set", func(b *MessageBuilder) {}, "from, to"},
		{"only from set", func(b *MessageBuilder) { _ = b.SetFrom(from) }, "to"},
		{"only to set", func(b *MessageBuilder) { _ = b.SetTo(from) }, "from"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewMessageBuilder()
			tt.prepare(b)

			_, err := b.Build()
			if !errors.Is(err, ErrIncompleteMessage) {
				t.Fatalf("Build() = %v, want ErrIncompleteMessage", err)
			}
			if !strings.HasPrefix(err.Error(), tt.missing+":") {
				t.Errorf("Build() = %q, want missing field %q named", err, tt.missing)
			}
		})
	}
}

func TestMessageBuilder_SetTwice(t *testing.T) {
	from := testAddress(t, "alice@example.com")
	to := testAddress(t, "bob@example.org")

	b := NewMessageBuilder()
	if err := b.SetFrom(from); err != nil {
		t.Fatalf("SetFrom() error = %v", err)
	}
	if err := b.SetFrom(to); !errors.Is(err, ErrFieldAlreadySet) {
		t.Errorf("second SetFrom() = %v, want ErrFieldAlreadySet", err)
	}

	if err := b.SetTo(to); err != nil {
		t.Fatalf("SetTo() error = %v", err)
	}
	if err := b.SetTo(from); !errors.Is(err, ErrFieldAlreadySet) {
		t.Errorf("second SetTo() = %v, want ErrFieldAlreadySet", err)
	}

	// The failed assignments must not have overwritten anything.
	msg, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if msg.From() != from || msg.To() != to {
		t.Errorf("message = %v -> %v, want %v -> %v", msg.From(), msg.To(), from, to)
	}
}
