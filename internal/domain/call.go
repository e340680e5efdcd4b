// Package domain defines the core domain models for the signaling backend.
package domain

// Direction represents which side originated a call leg.
type Direction string

const (
	DirectionInbound  Direction = "inbound"
	DirectionOutbound Direction = "outbound"
)

// CallState represents the provider-reported state of a call leg.
type CallState string

const (
	CallStateRequested  CallState = "REQUESTED"
	CallStateRinging    CallState = "RINGING"
	CallStateConnected  CallState = "CONNECTED"
	CallStateMuted      CallState = "MUTED"
	CallStateTerminated CallState = "TERMINATED"
)

// CallSession represents one call leg as reported by the provider. It is
// transient: built from a single provider response and forgotten once the
// handling request completes. The provider stays the source of truth for
// call state.
type CallSession struct {
	CallID       string    `json:"call_id"`
	Direction    Direction `json:"direction"`
	State        CallState `json:"state"`
	Counterparty string    `json:"counterparty"`
}

// CallStateFromProviderStatus maps a Twilio call status string onto the
// coarser lifecycle states this system distinguishes.
func CallStateFromProviderStatus(status string) CallState {
	switch status {
	case "queued", "initiated":
		return CallStateRequested
	case "ringing":
		return CallStateRinging
	case "in-progress", "answered":
		return CallStateConnected
	case "completed", "busy", "failed", "no-answer", "canceled":
		return CallStateTerminated
	default:
		return CallStateRequested
	}
}
