package cmd

import (
	"testing"

	"github.com/talentscout/talentscout/internal/logger"
)

func TestStoreFlagIsResolvedPerCommand(t *testing.T) {
	config := &Config{Store: &StoreConfig{Path: "configured.json"}}

	if err := candidatesCmd.Flags().Set("store", "admin-copy.json"); err != nil {
		t.Fatalf("setting --store on candidates: %v", err)
	}
	t.Cleanup(func() {
		_ = candidatesCmd.Flags().Set("store", "")
	})

	if got := storePath(candidatesCmd, config); got != "admin-copy.json" {
		t.Fatalf("storePath(candidates) = %q, want the flag value", got)
	}

	// The other command's flag must stay untouched by the candidates one.
	if got := storePath(runCmd, config); got != "configured.json" {
		t.Fatalf("storePath(run) = %q, want the configured path", got)
	}
}

func TestStoreFlagFallsBackToConfig(t *testing.T) {
	config := &Config{Store: &StoreConfig{Path: "configured.json"}}

	if got := storePath(runCmd, config); got != "configured.json" {
		t.Fatalf("storePath = %q, want the configured path", got)
	}
}

func TestSessionLogFields(t *testing.T) {
	fields := sessionLogFields("session-1", "te")

	if len(fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(fields))
	}

	if fields[0].Key != logger.FieldSession || fields[0].String != "session-1" {
		t.Fatalf("unexpected session field: %+v", fields[0])
	}

	if fields[1].Key != logger.FieldLanguage || fields[1].String != "te" {
		t.Fatalf("unexpected language field: %+v", fields[1])
	}
}

func TestSessionLogFieldsOmitsEmptyLanguage(t *testing.T) {
	fields := sessionLogFields("session-1", "")

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}

	if fields[0].Key != logger.FieldSession {
		t.Fatalf("unexpected field: %+v", fields[0])
	}
}
