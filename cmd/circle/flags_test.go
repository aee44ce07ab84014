package main

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func newPagedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scratch"}
	addPageFlags(cmd)
	return cmd
}

func TestPageParamsDefaults(t *testing.T) {
	cmd := newPagedCommand()
	p, err := pageParams(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Query()) != 0 {
		t.Errorf("expected no query parameters, got %v", p.Query())
	}
}

func TestPageParamsAllSet(t *testing.T) {
	cmd := newPagedCommand()
	mustSetFlag(t, cmd, fromFlagName, "2025-01-01T00:00:00Z")
	mustSetFlag(t, cmd, toFlagName, "2025-02-01T00:00:00Z")
	mustSetFlag(t, cmd, pageAfterFlagName, "cursor-1")
	mustSetFlag(t, cmd, pageSizeFlagName, "25")

	p, err := pageParams(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.From != "2025-01-01T00:00:00Z" {
		t.Errorf("unexpected from: %q", p.From)
	}
	if p.PageAfter != "cursor-1" {
		t.Errorf("unexpected pageAfter: %q", p.PageAfter)
	}
	if p.PageSize != 25 {
		t.Errorf("unexpected pageSize: %d", p.PageSize)
	}
}

func TestPageParamsSizeOutOfRange(t *testing.T) {
	cmd := newPagedCommand()
	mustSetFlag(t, cmd, pageSizeFlagName, "51")

	_, err := pageParams(cmd)
	if err == nil {
		t.Fatal("expected an error for page size over 50")
	}
	if !strings.Contains(err.Error(), "must be between 1 and 50") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestPageParamsCursorsExclusive(t *testing.T) {
	cmd := newPagedCommand()
	mustSetFlag(t, cmd, pageBeforeFlagName, "cursor-1")
	mustSetFlag(t, cmd, pageAfterFlagName, "cursor-2")

	_, err := pageParams(cmd)
	if err == nil {
		t.Fatal("expected an error when both cursors are set")
	}
	if !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func mustSetFlag(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	if err := cmd.Flags().Set(name, value); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
