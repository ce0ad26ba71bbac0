// Package message provides the text message exchanged with a chat completion API.
package message

import (
	"strings"

	"github.com/germanamz/relnotes/pkg/chats/role"
)

// Message is a single turn of a conversation.
type Message struct {
	Role    role.Role
	Content string
}

// New creates a Message with the given role and content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}

// System creates a system instruction message.
func System(content string) Message { return New(role.System, content) }

// User creates a user message.
func User(content string) Message { return New(role.User, content) }

// TrimmedContent returns the content without surrounding whitespace.
func (m Message) TrimmedContent() string {
	return strings.TrimSpace(m.Content)
}

// IsEmpty reports whether the message carries no text beyond whitespace.
func (m Message) IsEmpty() bool {
	return m.TrimmedContent() == ""
}
