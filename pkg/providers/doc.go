// Package providers groups the concrete chat completion adapters.
//
// Sub-packages:
//   - [github.com/germanamz/relnotes/pkg/providers/openai] — OpenAI-compatible Chat Completions API
//
// Shared HTTP, auth, and usage plumbing lives in
// [github.com/germanamz/relnotes/pkg/modeladapter].
package providers
