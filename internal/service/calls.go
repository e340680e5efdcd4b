package service

import (
	"context"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/adapter/provider"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/token"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/twiml"
)

// Dial places an outbound call to phoneNumber from the configured origin
// number, pointing the provider at the outbound-handling endpoint for
// instructions. Returns the provider-assigned call SID verbatim.
func (s *Service) Dial(ctx context.Context, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", &domain.ValidationError{Message: "Phone number is required"}
	}

	call, err := s.provider.CreateCall(ctx, provider.CallParams{
		To:          phoneNumber,
		From:        s.config.PhoneNumber,
		CallbackURL: s.callbackURL("/voice"),
	})
	if err != nil {
		return "", err
	}
	return call.CallID, nil
}

// SimulateInbound places a call from the origin number to itself, routed
// through the inbound-handling endpoint. It exercises the inbound path
// without a real external caller.
func (s *Service) SimulateInbound(ctx context.Context) (string, error) {
	call, err := s.provider.CreateCall(ctx, provider.CallParams{
		To:          s.config.PhoneNumber,
		From:        s.config.PhoneNumber,
		CallbackURL: s.callbackURL("/api/receive-call"),
	})
	if err != nil {
		return "", err
	}
	return call.CallID, nil
}

// OutboundGreeting returns the document spoken when an outbound call
// connects. Pure; every invocation yields an identical document.
func (s *Service) OutboundGreeting() twiml.Document {
	return twiml.OutboundGreeting()
}

// InboundRouting returns the document bridging an inbound caller to the
// browser client. Whether the client is actually online is the provider's
// problem, reported asynchronously on its side.
func (s *Service) InboundRouting() twiml.Document {
	return twiml.InboundRouting(token.DefaultIdentity)
}

// SetMute sets the mute state of a live call. Fire-and-forget: the provider
// applies the transition, and an empty or stale callSID surfaces as the
// provider's own rejection.
func (s *Service) SetMute(ctx context.Context, callSID string, muted bool) error {
	_, err := s.provider.UpdateCall(ctx, callSID, provider.CallUpdate{
		Muted: &muted,
	})
	return err
}

// Hangup moves a call to the completed status. Same error shape as SetMute;
// never retried, since a retried terminate could race a provider-side state
// change.
func (s *Service) Hangup(ctx context.Context, callSID string) error {
	_, err := s.provider.UpdateCall(ctx, callSID, provider.CallUpdate{
		Status: "completed",
	})
	return err
}
