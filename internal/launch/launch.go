// Package launch hands URLs and share text to the operating system.
package launch

import (
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Launcher opens URLs and shares text.
type Launcher interface {
	Open(url string) error
	Share(subject, body string) error
}

// System is the Launcher backed by the OS URL handler and the clipboard.
type System struct{}

// Open opens url in the default browser.
func (System) Open(url string) error {
	cmd := openCommand(runtime.GOOS, url)
	if cmd == nil {
		return ErrUnsupportedPlatform
	}
	return cmd.Start()
}

// Share copies the subject and body to the clipboard for pasting elsewhere.
func (System) Share(subject, body string) error {
	return clipboard.WriteAll(ShareText(subject, body))
}

// ShareText joins subject and body the way they are placed on the clipboard.
func ShareText(subject, body string) string {
	if subject == "" {
		return body
	}
	return subject + "\n\n" + body
}

// openCommand returns the command that opens url on goos, or nil if unknown.
func openCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", url)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	}
	return nil
}
