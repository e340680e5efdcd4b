package twiml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutboundGreeting(t *testing.T) {
	doc := OutboundGreeting()

	if len(doc.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(doc.Instructions))
	}
	if _, ok := doc.Instructions[0].(Say); !ok {
		t.Fatalf("expected Say, got %T", doc.Instructions[0])
	}
	for _, ins := range doc.Instructions {
		if _, ok := ins.(DialClient); ok {
			t.Fatal("greeting must not contain DialClient")
		}
	}
}

func TestOutboundGreetingRenderIsStable(t *testing.T) {
	first, err := Render(OutboundGreeting())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	second, err := Render(OutboundGreeting())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assert.Equal(t, first, second)
	assert.Contains(t, first, "<Say>Hello from Twilio! This call is working correctly.</Say>")
}

func TestInboundRouting(t *testing.T) {
	doc := InboundRouting("browser-client")

	if len(doc.Instructions) != 2 {
		t.Fatalf("expected 2 instructions, got %d", len(doc.Instructions))
	}
	if _, ok := doc.Instructions[0].(Say); !ok {
		t.Fatalf("expected Say first, got %T", doc.Instructions[0])
	}
	dial, ok := doc.Instructions[1].(DialClient)
	if !ok {
		t.Fatalf("expected DialClient second, got %T", doc.Instructions[1])
	}
	assert.Equal(t, "browser-client", dial.Identity)

	out, err := Render(doc)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<Say>You have an incoming call. Please hold.</Say>")
	assert.Contains(t, out, "<Dial><Client>browser-client</Client></Dial>")
}

func TestRenderRejectsInstructionAfterDialClient(t *testing.T) {
	doc := Document{Instructions: []Instruction{
		DialClient{Identity: "browser-client"},
		Say{Text: "unreachable"},
	}}
	if _, err := Render(doc); err == nil {
		t.Fatal("expected error for instruction after DialClient")
	}
}

func TestRenderHold(t *testing.T) {
	out, err := Render(Document{Instructions: []Instruction{Hold{Seconds: 5}}})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	assert.Contains(t, out, `<Pause length="5">`)
}
