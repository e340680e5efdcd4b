package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gejoprajan/TwilioToolBarNode/internal/domain"
)

func TestClientCreateCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC123/Calls.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC123" || pass != "token" {
			t.Fatalf("unexpected auth: %s/%s", user, pass)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm failed: %v", err)
		}
		if got := r.PostFormValue("To"); got != "+15551234567" {
			t.Fatalf("unexpected To: %s", got)
		}
		if got := r.PostFormValue("From"); got != "+15550000000" {
			t.Fatalf("unexpected From: %s", got)
		}
		if got := r.PostFormValue("Url"); got != "https://example.com/voice" {
			t.Fatalf("unexpected Url: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"sid":"CA123","status":"queued","direction":"outbound-api","to":"+15551234567","from":"+15550000000"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC123", "token")
	call, err := client.CreateCall(context.Background(), CallParams{
		To:          "+15551234567",
		From:        "+15550000000",
		CallbackURL: "https://example.com/voice",
	})
	if err != nil {
		t.Fatalf("CreateCall failed: %v", err)
	}
	if call.CallID != "CA123" {
		t.Fatalf("unexpected sid: %s", call.CallID)
	}
	if call.State != domain.CallStateRequested {
		t.Fatalf("unexpected state: %s", call.State)
	}
	if call.Direction != domain.DirectionOutbound {
		t.Fatalf("unexpected direction: %s", call.Direction)
	}
	if call.Counterparty != "+15551234567" {
		t.Fatalf("unexpected counterparty: %s", call.Counterparty)
	}
}

func TestClientCreateCallProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"code":21201,"message":"No 'To' number is specified","status":400}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC123", "token")
	_, err := client.CreateCall(context.Background(), CallParams{})
	if err == nil {
		t.Fatal("expected error")
	}
	perr, ok := err.(*domain.ProviderError)
	if !ok {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if perr.Message != "No 'To' number is specified" {
		t.Fatalf("unexpected message: %s", perr.Message)
	}
}

func TestClientUpdateCallMute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2010-04-01/Accounts/AC123/Calls/CA123.json" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm failed: %v", err)
		}
		if got := r.PostFormValue("Muted"); got != "true" {
			t.Fatalf("unexpected Muted: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"sid":"CA123","status":"in-progress"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC123", "token")
	muted := true
	call, err := client.UpdateCall(context.Background(), "CA123", CallUpdate{Muted: &muted})
	if err != nil {
		t.Fatalf("UpdateCall failed: %v", err)
	}
	if call.CallID != "CA123" {
		t.Fatalf("unexpected sid: %s", call.CallID)
	}
}

func TestClientUpdateCallHangup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("ParseForm failed: %v", err)
		}
		if got := r.PostFormValue("Status"); got != "completed" {
			t.Fatalf("unexpected Status: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"sid":"CA123","status":"completed"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "AC123", "token")
	call, err := client.UpdateCall(context.Background(), "CA123", CallUpdate{Status: "completed"})
	if err != nil {
		t.Fatalf("UpdateCall failed: %v", err)
	}
	if call.State != domain.CallStateTerminated {
		t.Fatalf("unexpected state: %s", call.State)
	}
}

func TestClientNetworkFailureIsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := NewClient(server.URL, "AC123", "token")
	_, err := client.CreateCall(context.Background(), CallParams{To: "+1", From: "+2"})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*domain.ProviderError); !ok {
		t.Fatalf("expected ProviderError, got %T", err)
	}
}
