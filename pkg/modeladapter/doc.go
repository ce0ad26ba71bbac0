// Package modeladapter defines the completion interface and the embeddable
// HTTP base used by chat completion providers.
//
// It contains:
//   - [Completer] interface and embeddable [ModelAdapter] base struct with HTTP helpers, auth, and custom headers
//   - [StatusError] for non-2xx API responses
//   - [github.com/germanamz/relnotes/pkg/modeladapter/usage] — token usage tracker
//
// This package contains no provider-specific code. Concrete adapters live in
// separate packages that import modeladapter.
package modeladapter
