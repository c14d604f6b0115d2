package browser

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestCommandRejectsNonHTTP(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://example.com", false},
		{"https://apod.nasa.gov/apod/image/x.jpg", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}

	for _, tt := range tests {
		_, _, err := command(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("command(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("command(%q): unexpected error: %v", tt.url, err)
		}
	}
}

func TestCommandCarriesURL(t *testing.T) {
	const link = "https://example.com/page"
	name, args, err := command(link)
	if err != nil {
		t.Fatalf("command: %v", err)
	}
	if name == "" {
		t.Fatal("empty launcher name")
	}
	if len(args) == 0 || args[len(args)-1] != link {
		t.Errorf("expected URL as final argument, got %v", args)
	}
	if runtime.GOOS == "linux" && name != "xdg-open" {
		t.Errorf("launcher on linux = %q, want xdg-open", name)
	}
}

func TestOpenFileRequiresExistingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.html")
	if err := OpenFile(missing); err == nil {
		t.Error("OpenFile on a missing file should fail before launching anything")
	}
}
