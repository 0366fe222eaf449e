package cmd

import "testing"

func TestParseResize(t *testing.T) {
	w, h, err := parseResize("1920x1080")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if w != 1920 || h != 1080 {
		t.Errorf("got %dx%d", w, h)
	}

	// Upper-case separator is accepted.
	if _, _, err := parseResize("800X600"); err != nil {
		t.Errorf("800X600 rejected: %v", err)
	}

	for _, bad := range []string{"", "800", "x600", "800x", "axb"} {
		if _, _, err := parseResize(bad); err == nil {
			t.Errorf("parseResize(%q): expected error", bad)
		}
	}
}
