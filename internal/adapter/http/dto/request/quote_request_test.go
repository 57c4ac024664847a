package request

import (
	"errors"
	"testing"
)

func TestQuoteResponseRequest_ResolveAccepted(t *testing.T) {
	for _, word := range []string{"accept", "accepted", " ACCEPT "} {
		r := QuoteResponseRequest{Response: word}
		accepted, err := r.ResolveAccepted()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", word, err)
		}
		if !accepted {
			t.Fatalf("expected %q to accept", word)
		}
	}

	for _, word := range []string{"reject", "rejected", "Rejected"} {
		r := QuoteResponseRequest{Response: word}
		accepted, err := r.ResolveAccepted()
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", word, err)
		}
		if accepted {
			t.Fatalf("expected %q to reject", word)
		}
	}

	r := QuoteResponseRequest{Response: "maybe"}
	if _, err := r.ResolveAccepted(); !errors.Is(err, ErrInvalidQuoteResponse) {
		t.Fatalf("expected ErrInvalidQuoteResponse, got %v", err)
	}
}

func TestJobCodeRequest_ResolveRole(t *testing.T) {
	r := JobCodeRequest{JobID: "job-1", Role: " Customer "}
	role, err := r.ResolveRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != CodeRoleCustomer {
		t.Fatalf("expected customer role, got %q", role)
	}

	v := JobCodeVerifyRequest{JobID: "job-1", Role: "PROVIDER", Code: "WXY234"}
	role, err = v.ResolveRole()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role != CodeRoleProvider {
		t.Fatalf("expected provider role, got %q", role)
	}

	bad := JobCodeRequest{JobID: "job-1", Role: "admin"}
	if _, err := bad.ResolveRole(); !errors.Is(err, ErrInvalidCodeRole) {
		t.Fatalf("expected ErrInvalidCodeRole, got %v", err)
	}
}
