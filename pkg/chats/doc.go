// Package chats provides the provider-agnostic conversation model sent to
// chat completion APIs.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/relnotes/pkg/chats/role] — conversation roles (system, user, assistant)
//   - [github.com/germanamz/relnotes/pkg/chats/message] — a role plus its text content
//
// No provider or API code is included.
package chats
