package format

import "testing"

func TestLookupKnownFormats(t *testing.T) {
	for _, name := range []string{"png", "jpg", "jpeg", "webp", "tiff", "bmp", "gif", "ico"} {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q): not found", name)
		}
		if c.EncoderID == "" || c.Extension == "" {
			t.Errorf("Lookup(%q): incomplete entry %+v", name, c)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	c, ok := Lookup("PNG")
	if !ok {
		t.Fatal("Lookup(PNG): not found")
	}
	if c.EncoderID != "png" {
		t.Errorf("encoder id: got %q, want png", c.EncoderID)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("xyz"); ok {
		t.Error("Lookup(xyz): expected not found")
	}
}

func TestTransparencySet(t *testing.T) {
	cases := map[string]bool{
		"png": true, "gif": true, "webp": true, "ico": true,
		"jpg": false, "jpeg": false, "tiff": false, "bmp": false,
	}
	for name, want := range cases {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q): not found", name)
		}
		if c.Transparency != want {
			t.Errorf("%s transparency: got %v, want %v", name, c.Transparency, want)
		}
	}
}

func TestQualityParamSet(t *testing.T) {
	for name, want := range map[string]bool{"jpeg": true, "webp": true, "png": false, "gif": false} {
		c, _ := Lookup(name)
		if c.QualityParam != want {
			t.Errorf("%s quality param: got %v, want %v", name, c.QualityParam, want)
		}
	}
}

func TestSupportedInputExt(t *testing.T) {
	for _, ext := range []string{".png", ".JPG", ".jpeg", ".tif", ".tiff", ".webp", ".bmp", ".gif"} {
		if !SupportedInputExt(ext) {
			t.Errorf("SupportedInputExt(%q) = false", ext)
		}
	}
	for _, ext := range []string{".txt", ".svg", ".pdf", ""} {
		if SupportedInputExt(ext) {
			t.Errorf("SupportedInputExt(%q) = true", ext)
		}
	}
}
