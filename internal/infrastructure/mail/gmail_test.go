package mail

import (
	"context"
	"testing"
)

func TestStubSendEmail(t *testing.T) {
	s := NewStub()

	sent, err := s.SendEmail(context.Background(), "joe@apexplumbingnyc.com", "Hello", "Quick update?")
	if err != nil {
		t.Fatalf("SendEmail() error = %v", err)
	}
	if !sent {
		t.Fatalf("SendEmail() = false")
	}

	if _, err := s.SendEmail(context.Background(), "", "Hello", "body"); err == nil {
		t.Fatalf("SendEmail() error = nil, want recipient validation")
	}
}

func TestStubCheckEmails(t *testing.T) {
	s := NewStub()

	inbound, err := s.CheckEmails(context.Background())
	if err != nil {
		t.Fatalf("CheckEmails() error = %v", err)
	}
	if len(inbound) != 0 {
		t.Fatalf("inbound = %d, want 0", len(inbound))
	}
}

func TestNewInboundSummary(t *testing.T) {
	got := NewInboundSummary("joe@apexplumbingnyc.com", "Re: audit", "Sounds good")
	if got.ID == "" || got.From != "joe@apexplumbingnyc.com" {
		t.Fatalf("NewInboundSummary() = %+v", got)
	}
}
