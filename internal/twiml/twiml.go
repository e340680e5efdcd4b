// Package twiml builds Twilio Markup Language call-handling documents.
//
// A Document is an ordered list of instructions with a separate render step,
// so handling logic can be tested without touching XML or the network. Only
// the verbs this backend emits are modeled; no provider SDK dependency.
package twiml

import (
	"bytes"
	"encoding/xml"
	"errors"
)

// Instruction is one call-handling step within a document.
type Instruction interface {
	verb() any
}

// Say speaks text to the call leg.
type Say struct {
	Text string
}

// DialClient bridges the leg to a named browser client. It is terminal:
// no instruction may follow it.
type DialClient struct {
	Identity string
}

// Hold pauses the leg for the given number of seconds.
type Hold struct {
	Seconds int
}

// Document is an ordered call-handling instruction sequence.
type Document struct {
	Instructions []Instruction
}

// OutboundGreeting is the document returned when an outbound call connects:
// a single spoken confirmation, nothing further.
func OutboundGreeting() Document {
	return Document{Instructions: []Instruction{
		Say{Text: "Hello from Twilio! This call is working correctly."},
	}}
}

// InboundRouting announces hold, then bridges the caller to the named
// browser client.
func InboundRouting(identity string) Document {
	return Document{Instructions: []Instruction{
		Say{Text: "You have an incoming call. Please hold."},
		DialClient{Identity: identity},
	}}
}

type response struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any    `xml:",any"`
}

type sayVerb struct {
	XMLName xml.Name `xml:"Say"`
	Text    string   `xml:",chardata"`
}

type dialVerb struct {
	XMLName xml.Name `xml:"Dial"`
	Client  string   `xml:"Client"`
}

type pauseVerb struct {
	XMLName xml.Name `xml:"Pause"`
	Length  int      `xml:"length,attr"`
}

func (s Say) verb() any        { return sayVerb{Text: s.Text} }
func (d DialClient) verb() any { return dialVerb{Client: d.Identity} }
func (h Hold) verb() any       { return pauseVerb{Length: h.Seconds} }

// Render serializes the document to TwiML. It enforces the document
// invariant: at most one DialClient, and nothing after it.
func Render(doc Document) (string, error) {
	var r response
	for i, ins := range doc.Instructions {
		if _, ok := ins.(DialClient); ok && i != len(doc.Instructions)-1 {
			return "", errors.New("twiml: DialClient must be the final instruction")
		}
		r.Verbs = append(r.Verbs, ins.verb())
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
