package provider

import (
	"context"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

// MockClient is a recording implementation of CallAPI for testing.
type MockClient struct {
	// SID is returned as the call SID of every successful operation.
	SID string
	// Err, when set, is returned by every operation instead of a result.
	Err error

	Created []CallParams
	Updated []RecordedUpdate
}

// RecordedUpdate captures one UpdateCall invocation.
type RecordedUpdate struct {
	CallSID string
	Update  CallUpdate
}

// NewMockClient creates a new mock client returning sid on success.
func NewMockClient(sid string) *MockClient {
	return &MockClient{SID: sid}
}

// Ensure MockClient implements CallAPI interface.
var _ CallAPI = (*MockClient)(nil)

// CreateCall records the invocation and returns a canned session.
func (m *MockClient) CreateCall(ctx context.Context, params CallParams) (*domain.CallSession, error) {
	m.Created = append(m.Created, params)
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.CallSession{
		CallID:       m.SID,
		Direction:    domain.DirectionOutbound,
		State:        domain.CallStateRequested,
		Counterparty: params.To,
	}, nil
}

// UpdateCall records the invocation and returns a canned session.
func (m *MockClient) UpdateCall(ctx context.Context, callSID string, update CallUpdate) (*domain.CallSession, error) {
	m.Updated = append(m.Updated, RecordedUpdate{CallSID: callSID, Update: update})
	if m.Err != nil {
		return nil, m.Err
	}
	state := domain.CallStateConnected
	if update.Status == "completed" {
		state = domain.CallStateTerminated
	} else if update.Muted != nil && *update.Muted {
		state = domain.CallStateMuted
	}
	return &domain.CallSession{
		CallID: callSID,
		State:  state,
	}, nil
}
