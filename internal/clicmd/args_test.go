package clicmd

import "testing"

func TestParseArgs_PositionalsAndFlags(t *testing.T) {
	args, flags := parseArgs([]string{"Meeting", "notes", "--space", "Work", "--json"})

	if len(args) != 2 || args[0] != "Meeting" || args[1] != "notes" {
		t.Fatalf("unexpected positional args: %v", args)
	}
	if flags["space"] != "Work" {
		t.Fatalf("expected space=Work, got %q", flags["space"])
	}
	if flags["json"] != "true" {
		t.Fatalf("expected trailing bare flag to default to true, got %q", flags["json"])
	}
}

func TestParseArgs_EqualsForm(t *testing.T) {
	_, flags := parseArgs([]string{"--name=Groceries", "--limit=10"})

	if flags["name"] != "Groceries" {
		t.Fatalf("expected name=Groceries, got %q", flags["name"])
	}
	if flags["limit"] != "10" {
		t.Fatalf("expected limit=10, got %q", flags["limit"])
	}
}

func TestParseArgs_FlagFollowedByAnotherFlagIsBoolean(t *testing.T) {
	_, flags := parseArgs([]string{"--verbose", "--space", "Work"})

	if flags["verbose"] != "true" {
		t.Fatalf("expected verbose=true, got %q", flags["verbose"])
	}
	if flags["space"] != "Work" {
		t.Fatalf("expected space=Work, got %q", flags["space"])
	}
}

func TestParseArgs_Empty(t *testing.T) {
	args, flags := parseArgs(nil)
	if len(args) != 0 || len(flags) != 0 {
		t.Fatalf("expected no args or flags, got %v %v", args, flags)
	}
}
