package completeness

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/prosegate/internal/schema"
)

const completeHandoff = `# Handoff: Test

**Date:** 2026-02-07

## Where things stand

Everything works fine.

## Decisions made

- Chose X over Y because Z.

## What's next

1. Do the thing.

## Landmines

- Watch out for the thing.
`

func TestCheck_CompleteHandoffPasses(t *testing.T) {
	report, err := Check(completeHandoff, "handoff", nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Pass {
		t.Errorf("complete handoff should pass: %+v", report.Sections)
	}
	for _, s := range report.Sections {
		if s.Status != schema.SectionPresent {
			t.Errorf("section %q = %s, want present", s.Name, s.Status)
		}
	}
}

func TestCheck_MissingSection(t *testing.T) {
	content := "# Handoff: Test\n\n## Where things stand\n\nEverything works fine.\n\n## Decisions made\n\n- Chose X.\n"
	report, err := Check(content, "handoff", nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Pass {
		t.Error("incomplete handoff should fail")
	}
	for _, s := range report.Sections {
		if s.Name == "Landmines" && s.Status != schema.SectionMissing {
			t.Errorf("Landmines = %s, want missing", s.Status)
		}
	}
	found := false
	for _, m := range report.Missing {
		if m == "Landmines" {
			found = true
		}
	}
	if !found {
		t.Errorf("missing list = %v, want Landmines", report.Missing)
	}
}

func TestCheck_EmptySection(t *testing.T) {
	content := "# Handoff: Test\n\n## Where things stand\n\nFine.\n\n## Decisions made\n\n- Chose X.\n\n## What's next\n\nDo stuff.\n\n## Landmines\n\nTBD\n"
	report, err := Check(content, "handoff", nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if report.Pass {
		t.Error("placeholder section should fail")
	}
	for _, s := range report.Sections {
		if s.Name == "Landmines" && s.Status != schema.SectionEmpty {
			t.Errorf("Landmines = %s, want empty", s.Status)
		}
	}
	if len(report.Empty) != 1 || report.Empty[0] != "Landmines" {
		t.Errorf("empty list = %v, want [Landmines]", report.Empty)
	}
}

func TestCheck_UnknownTemplate(t *testing.T) {
	_, err := Check("# Test", "nonexistent", nil)
	var ut *schema.UnknownTemplateError
	if !errors.As(err, &ut) {
		t.Fatalf("err = %v, want UnknownTemplateError", err)
	}
	if !strings.Contains(err.Error(), "unknown template: nonexistent") {
		t.Errorf("message = %q", err.Error())
	}
	if !strings.Contains(err.Error(), "adr") {
		t.Errorf("message should list available templates: %q", err.Error())
	}
}

func TestAvailableTemplates(t *testing.T) {
	names := AvailableTemplates(nil)
	for _, want := range []string{"adr", "handoff", "design-doc"} {
		found := false
		for _, n := range names {
			if n == want {
				found = true
			}
		}
		if !found {
			t.Errorf("templates %v should include %q", names, want)
		}
	}
}

func TestCheck_CustomTemplate(t *testing.T) {
	custom := map[string][]string{"release-notes": {"Summary", "Changes"}}
	content := "## Summary\n\nStuff happened.\n\n## Changes\n\n- Fixed bug."
	report, err := Check(content, "release-notes", custom)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Pass {
		t.Errorf("custom template should pass: %+v", report.Sections)
	}
}

func TestCheck_CustomTemplateOverridesBuiltin(t *testing.T) {
	custom := map[string][]string{"handoff": {"Status", "Next"}}
	content := "## Status\n\nDone.\n\n## Next\n\nShip it."
	report, err := Check(content, "handoff", custom)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Pass {
		t.Errorf("overridden handoff should pass: %+v", report.Sections)
	}
}

func TestAvailableTemplates_IncludesCustom(t *testing.T) {
	names := AvailableTemplates(map[string][]string{"release-notes": {"Summary"}})
	found := false
	for _, n := range names {
		if n == "release-notes" {
			found = true
		}
	}
	if !found {
		t.Errorf("templates %v should include release-notes", names)
	}
}

func TestCheck_CompleteADRPasses(t *testing.T) {
	content := `# ADR-0001: Test Decision

## Context and Problem Statement

We need to decide something.

## Decision Drivers

- Speed
- Simplicity

## Considered Options

1. Option A
2. Option B

## Decision Outcome

Chose option A because it's faster.

## Consequences

- Good: faster delivery.
- Bad: more complexity.
`
	report, err := Check(content, "adr", nil)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !report.Pass {
		t.Errorf("complete ADR should pass: %+v", report.Sections)
	}
}
