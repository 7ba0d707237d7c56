package candidate

import (
	"strings"
	"testing"
)

func TestValidateAcceptsCompleteProfile(t *testing.T) {
	profile := Profile{
		Name:       "Alice",
		Email:      "a@x.com",
		Phone:      "123",
		Experience: 4,
		TechStack:  "Python, SQL",
	}

	if err := profile.Validate(); err != nil {
		t.Fatalf("expected valid profile, got %v", err)
	}
}

func TestValidateReportsMissingFields(t *testing.T) {
	profile := Profile{
		Name:  "  ",
		Email: "a@x.com",
	}

	err := profile.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	for _, field := range []string{"name", "phone", "tech_stack"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %q in error, got %q", field, err.Error())
		}
	}
	if strings.Contains(err.Error(), "email") {
		t.Fatalf("email is set but reported missing: %q", err.Error())
	}
}

func TestValidateRejectsNegativeExperience(t *testing.T) {
	profile := Profile{
		Name:       "Alice",
		Email:      "a@x.com",
		Phone:      "123",
		Experience: -1,
		TechStack:  "Python",
	}

	if err := profile.Validate(); err == nil {
		t.Fatal("expected error for negative experience")
	}
}

func TestMissingFieldsOrderIsStable(t *testing.T) {
	missing := Profile{}.MissingFields()

	want := []string{"name", "email", "phone", "tech_stack"}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), missing)
	}
	for i, field := range want {
		if missing[i] != field {
			t.Fatalf("missing fields out of order: %v", missing)
		}
	}
}
