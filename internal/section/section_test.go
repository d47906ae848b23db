package section

import "testing"

func TestLocate_Basic(t *testing.T) {
	lines := []string{
		"# 2025-10-24",
		"",
		"## Journal",
		"- 09:00:00 standup",
		"- 13:15:42 lunch",
		"",
		"## Tasks",
		"- [ ] review",
	}
	s := Locate(lines, "Journal")
	if s == nil {
		t.Fatal("section not found")
	}
	if s.Start != 2 || s.End != 6 || s.ContentEnd != 5 {
		t.Errorf("got %+v, want {Start:2 End:6 ContentEnd:5}", *s)
	}
}

func TestLocate_LastSectionRunsToEOF(t *testing.T) {
	lines := []string{
		"## Journal",
		"- 09:00:00 standup",
	}
	s := Locate(lines, "Journal")
	if s == nil {
		t.Fatal("section not found")
	}
	if s.End != 2 || s.ContentEnd != 2 {
		t.Errorf("got %+v", *s)
	}
}

func TestLocate_EmptyBody(t *testing.T) {
	lines := []string{
		"## Journal",
		"",
		"",
		"## Tasks",
	}
	s := Locate(lines, "Journal")
	if s == nil {
		t.Fatal("section not found")
	}
	if s.ContentEnd != 1 {
		t.Errorf("ContentEnd = %d, want 1 (right after the heading)", s.ContentEnd)
	}
	if s.End != 3 {
		t.Errorf("End = %d, want 3", s.End)
	}
}

func TestLocate_SubstringMatch(t *testing.T) {
	lines := []string{"### Daily Journal Entries", "text"}
	if Locate(lines, "Journal") == nil {
		t.Error("substring heading match expected")
	}
}

func TestLocate_FirstMatchWins(t *testing.T) {
	lines := []string{
		"## Journal",
		"first",
		"## Journal",
		"second",
	}
	s := Locate(lines, "Journal")
	if s == nil || s.Start != 0 {
		t.Errorf("got %+v, want Start 0", s)
	}
}

func TestLocate_NotFound(t *testing.T) {
	lines := []string{"# Day", "Journal mentioned in prose, not a heading"}
	if s := Locate(lines, "Journal"); s != nil {
		t.Errorf("expected nil, got %+v", *s)
	}
}

func TestLocate_IndentedHeading(t *testing.T) {
	lines := []string{"  ## Journal", "body"}
	if Locate(lines, "Journal") == nil {
		t.Error("leading whitespace before '#' should still count as a heading")
	}
}
