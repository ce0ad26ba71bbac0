package message_test

import (
	"testing"

	"github.com/germanamz/relnotes/pkg/chats/message"
	"github.com/germanamz/relnotes/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	msg := message.New(role.Assistant, "hi there")

	assert.Equal(t, role.Assistant, msg.Role)
	assert.Equal(t, "hi there", msg.Content)
}

func TestSystemAndUser(t *testing.T) {
	assert.Equal(t, role.System, message.System("rules").Role)
	assert.Equal(t, role.User, message.User("notes").Role)
}

func TestMessage_TrimmedContent(t *testing.T) {
	msg := message.New(role.Assistant, "\n  # 版本 1.2.3\n\n")

	assert.Equal(t, "# 版本 1.2.3", msg.TrimmedContent())
	assert.False(t, msg.IsEmpty())
}

func TestMessage_IsEmpty(t *testing.T) {
	var zero message.Message

	assert.True(t, zero.IsEmpty())
	assert.True(t, message.New(role.Assistant, " \t\n").IsEmpty())
}
