package mail

import (
	"errors"
	"fmt"
)

var (
	// ErrFieldAlreadySet is returned when a builder field is assigned a
	// second time.
	ErrFieldAlreadySet = errors.New("field already set")
	// ErrIncompleteMessage is returned by Build while a required field is
	// still unset.
	ErrIncompleteMessage = errors.New("incomplete message")
)

// Message is an immutable pair of validated sender and recipient
// addresses, obtained through MessageBuilder.
type Message struct {
	from Address
	to   Address
}

// From returns the sender address.
func (m Message) From() Address { return m.from }

// To returns the recipient address.
func (m Message) To() Address { return m.to }

// MessageBuilder assembles a Message. Each field can be set exactly once
// and there is no way to unset one; Build succeeds only after both have
// been set. The builder walks the state space
// (unset,unset) -> (set,unset)|(unset,set) -> (set,set) with one-way
// transitions, so an incomplete or double-assigned message cannot be
// constructed.
type MessageBuilder struct {
	from    Address
	to      Address
	fromSet bool
	toSet   bool
}

// NewMessageBuilder returns a builder with both fields unset.
func NewMessageBuilder() *MessageBuilder {
	return &MessageBuilder{}
}

// SetFrom assigns the sender address, failing with ErrFieldAlreadySet if a
// sender was assigned before.
func (b *MessageBuilder) SetFrom(from Address) error {
	if b.fromSet {
		return fmt.Errorf("from: %w", ErrFieldAlreadySet)
	}
	b.from = from
	b.fromSet = true
	return nil
}

// SetTo assigns the recipient address, failing with ErrFieldAlreadySet if
// a recipient was assigned before.
func (b *MessageBuilder) SetTo(to Address) error {
	if b.toSet {
		return fmt.Errorf("to: %w", ErrFieldAlreadySet)
	}
	b.to = to
	b.toSet = true
	return nil
}

// Build returns the assembled message. It fails with ErrIncompleteMessage,
// naming the missing field(s), while either field is unset.
func (b *MessageBuilder) Build() (Message, error) {
	switch {
	case !b.fromSet && !b.toSet:
		return Message{}, fmt.Errorf("from, to: %w", ErrIncompleteMessage)
	case !b.fromSet:
		return Message{}, fmt.Errorf("from: %w", ErrIncompleteMessage)
	case !b.toSet:
		return Message{}, fmt.Errorf("to: %w", ErrIncompleteMessage)
	}
	return Message{from: b.from, to: b.to}, nil
}
