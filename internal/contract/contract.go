// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// StdinPath is the input name that reads envelopes from standard input.
const StdinPath = "-"

// EnvelopeSource loads raw envelope payloads from a list of inputs.
// This allows the render pipeline to be tested without touching the filesystem.
type EnvelopeSource interface {
	// Load returns the envelope payloads of every input, in input order.
	Load(ctx context.Context, inputs []string) ([]json.RawMessage, error)
}

// MockEnvelopeSource is a testify mock of EnvelopeSource.
type MockEnvelopeSource struct {
	mock.Mock
}

var _ EnvelopeSource = &MockEnvelopeSource{} // Compile-time check

// Load implements the EnvelopeSource interface.
func (m *MockEnvelopeSource) Load(ctx context.Context, inputs []string) ([]json.RawMessage, error) {
	ret := m.Called(ctx, inputs)
	raws, _ := ret.Get(0).([]json.RawMessage)
	return raws, ret.Error(1)
}
