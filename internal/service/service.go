// Package service implements the call control orchestration: it maps each
// lifecycle event onto exactly one provider operation or response document.
package service

import (
	"strings"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/adapter/provider"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/config"
	"github.com/Gejoprajan/TwilioToolBarNode/internal/token"
)

// Service holds the orchestrator's collaborators. It keeps no per-call
// state; the provider is the source of truth for call state, so concurrent
// requests never contend on anything here.
type Service struct {
	provider provider.CallAPI
	issuer   *token.Issuer
	config   *config.Config
}

// New creates a new service.
func New(p provider.CallAPI, issuer *token.Issuer, cfg *config.Config) *Service {
	return &Service{
		provider: p,
		issuer:   issuer,
		config:   cfg,
	}
}

// IssueToken issues a capability token for identity, defaulting to the
// well-known browser client when identity is empty.
func (s *Service) IssueToken(identity string) (string, error) {
	return s.issuer.Issue(identity)
}

// callbackURL joins the configured base URL with a callback path.
func (s *Service) callbackURL(path string) string {
	return strings.TrimSuffix(s.config.BaseURL, "/") + path
}
