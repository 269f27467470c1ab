package token

import (
	"testing"

	"github.com/BruksfildServices01/barber-platform/internal/auth"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	actor := auth.Actor{TenantID: 7, ID: 42, Role: auth.RoleBarber}

	signed, err := Issue("test-secret", actor)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	got, err := Verify("test-secret", signed)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != actor {
		t.Fatalf("round trip changed actor: got %+v, want %+v", got, actor)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := Issue("secret-a", auth.Actor{TenantID: 1, ID: 1, Role: auth.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := Verify("secret-b", signed); err == nil {
		t.Fatal("expected verification to fail with the wrong secret")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := Verify("test-secret", "not-a-token"); err == nil {
		t.Fatal("expected verification to fail for malformed input")
	}
}
