package browser

import (
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Open launches the system browser for a record's media or full-size
// image link. Only http and https URLs are allowed through.
func Open(rawURL string) error {
	name, args, err := command(rawURL)
	if err != nil {
		return err
	}
	return exec.Command(name, args...).Start()
}

// OpenFile hands a local file to the platform handler. The path must
// name an existing file; the scheme whitelist does not apply because
// the caller produced the file itself.
func OpenFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}
	name, args := launcher(abs)
	return exec.Command(name, args...).Start()
}

func command(rawURL string) (string, []string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", nil, fmt.Errorf("refusing to open URL with scheme %q (only http/https allowed)", u.Scheme)
	}

	name, args := launcher(rawURL)
	return name, args, nil
}

func launcher(target string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}
	case "windows":
		// rundll32 instead of cmd /c start, to avoid shell interpretation
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
