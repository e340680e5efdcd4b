// Package provider adapts the Twilio REST API behind a two-method call
// interface, so the orchestrator never depends on a particular client
// library shape.
package provider

import (
	"context"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

// CallParams describes an outbound call creation request.
type CallParams struct {
	// To is the destination: a phone number or client identity.
	To string
	// From is the caller ID presented to the callee.
	From string
	// CallbackURL is fetched by the provider for call-handling
	// instructions once the leg connects.
	CallbackURL string
}

// CallUpdate describes an in-place mutation of a live call.
type CallUpdate struct {
	// Muted toggles the leg's mute state when set.
	Muted *bool
	// Status moves the call to a new lifecycle status, e.g. "completed"
	// to hang up.
	Status string
}

// CallAPI defines the provider operations the orchestrator needs. Every
// failure is surfaced as a *domain.ProviderError.
type CallAPI interface {
	// CreateCall places a new call leg and returns the provider's view
	// of it.
	CreateCall(ctx context.Context, params CallParams) (*domain.CallSession, error)

	// UpdateCall applies a mutation to an existing call identified by
	// its provider SID.
	UpdateCall(ctx context.Context, callSID string, update CallUpdate) (*domain.CallSession, error)
}

// Ensure Client implements CallAPI interface.
var _ CallAPI = (*Client)(nil)
