package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

// DefaultBaseURL is the production Twilio API endpoint.
const DefaultBaseURL = "https://api.twilio.com"

const apiVersion = "2010-04-01"

// Client is the Twilio REST API client.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	httpClient *http.Client
}

// NewClient creates a new Twilio client. baseURL is normally DefaultBaseURL;
// tests point it at a local server.
func NewClient(baseURL, accountSID, authToken string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// callResource is the provider's wire representation of a call.
type callResource struct {
	SID       string `json:"sid"`
	Status    string `json:"status"`
	Direction string `json:"direction"`
	To        string `json:"to"`
	From      string `json:"from"`
}

// apiError is the provider's wire representation of a failure.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// CreateCall places a new outbound call leg.
func (c *Client) CreateCall(ctx context.Context, params CallParams) (*domain.CallSession, error) {
	form := url.Values{}
	form.Set("To", params.To)
	form.Set("From", params.From)
	form.Set("Url", params.CallbackURL)
	form.Set("Method", http.MethodPost)

	endpoint := fmt.Sprintf("%s/%s/Accounts/%s/Calls.json", c.baseURL, apiVersion, c.accountSID)
	return c.post(ctx, endpoint, form)
}

// UpdateCall applies a mutation to an existing call.
func (c *Client) UpdateCall(ctx context.Context, callSID string, update CallUpdate) (*domain.CallSession, error) {
	form := url.Values{}
	if update.Muted != nil {
		form.Set("Muted", strconv.FormatBool(*update.Muted))
	}
	if update.Status != "" {
		form.Set("Status", update.Status)
	}

	endpoint := fmt.Sprintf("%s/%s/Accounts/%s/Calls/%s.json", c.baseURL, apiVersion, c.accountSID, callSID)
	return c.post(ctx, endpoint, form)
}

func (c *Client) post(ctx context.Context, endpoint string, form url.Values) (*domain.CallSession, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &domain.ProviderError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.ProviderError{Message: "failed to read provider response", Err: err}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
			return nil, &domain.ProviderError{Message: apiErr.Message}
		}
		return nil, &domain.ProviderError{Message: fmt.Sprintf("provider returned status %d", resp.StatusCode)}
	}

	var call callResource
	if err := json.Unmarshal(body, &call); err != nil {
		return nil, &domain.ProviderError{Message: "failed to parse provider response", Err: err}
	}
	return call.toSession(), nil
}

func (r *callResource) toSession() *domain.CallSession {
	direction := domain.DirectionOutbound
	if strings.HasPrefix(r.Direction, "inbound") {
		direction = domain.DirectionInbound
	}
	counterparty := r.To
	if direction == domain.DirectionInbound {
		counterparty = r.From
	}
	return &domain.CallSession{
		CallID:       r.SID,
		Direction:    direction,
		State:        domain.CallStateFromProviderStatus(r.Status),
		Counterparty: counterparty,
	}
}
