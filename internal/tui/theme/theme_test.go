package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("nope"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(nope) = %s, want %s", got.Name, FlexokiDark.Name)
	}
	if got := ByName("tokyo-night"); got.Name != "tokyo-night" {
		t.Errorf("ByName(tokyo-night) = %s", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	defer SetActive(FlexokiDark.Name)

	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %s, want terminal", Active.Name)
	}
	if n := len(Names()); n != len(All) {
		t.Errorf("Names() returned %d names, want %d", n, len(All))
	}
}
