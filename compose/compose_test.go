package compose

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/mheijink/brief/mail"
)

func buildMessage(t *testing.T) mail.Message {
	t.Helper()

	from, err := mail.ParseAddress("alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	to, err := mail.ParseAddress("bob@example.org")
	if err != nil {
		t.Fatal(err)
	}

	b := mail.NewMessageBuilder()
	if err := b.SetFrom(from); err != nil {
		t.Fatal(err)
	}
	if err := b.SetTo(to); err != nil {
		t.Fatal(err)
	}
	msg, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestWrite(t *testing.T) {
	msg := buildMessage(t)

	var buf bytes.Buffer
	opts := Options{
		Subject: "Greetings",
		Body:    "Hello from the test suite.",
		Date:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
	}
	if err := Write(&buf, msg, opts); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"alice@example.com",
		"bob@example.org",
		"Greetings",
		"Hello from the test suite.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	header, _, found := strings.Cut(out, "\r\n\r\n")
	if !found {
		header, _, found = strings.Cut(out, "\n\n")
	}
	if !found {
		t.Fatalf("no header/body separator in output:\n%s", out)
	}
	for _, field := range []string{"From:", "To:", "Subject:", "Date:"} {
		if !strings.Contains(header, field) {
			t.Errorf("header missing %s field:\n%s", field, header)
		}
	}
}

func TestWrite_DefaultsDate(t *testing.T) {
	msg := buildMessage(t)

	var buf bytes.Buffer
	if err := Write(&buf, msg, Options{Subject: "x", Body: "y"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Date:") {
		t.Error("output missing Date header")
	}
}
