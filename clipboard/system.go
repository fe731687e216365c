// Package clipboard implements the OS clipboard boundary. Plain text goes
// through github.com/atotto/clipboard; the text/html flavor requires a
// platform tool (wl-copy or xclip on Linux, osascript on macOS, PowerShell
// on Windows) which is probed once at construction.
package clipboard

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/pagelink"
)

// Compile-time interface verification.
var _ pagelink.Clipboard = (*System)(nil)

// htmlTool is a resolved platform command for one clipboard direction.
// On darwin and windows the write script is built per call; the probed
// entry only records that the interpreter exists.
type htmlTool struct {
	name string
	args []string
}

// System is the real OS clipboard. The zero value is not usable; construct
// with NewSystem so the HTML tooling is probed.
type System struct {
	goos      string
	htmlWrite *htmlTool
	htmlRead  *htmlTool

	// runCmd and writeText are swappable for tests.
	runCmd    func(ctx context.Context, tool *htmlTool, stdin string) (string, error)
	writeText func(text string) error
}

// NewSystem probes the platform for HTML clipboard tooling and returns a
// System. A missing tool is not an error; SupportsHTML reports false and
// writes carry plain text only.
func NewSystem() *System {
	s := &System{goos: runtime.GOOS, runCmd: runCmd, writeText: atotto.WriteAll}
	s.htmlWrite, s.htmlRead = probeHTMLTools(runtime.GOOS, exec.LookPath)
	return s
}

// probeHTMLTools resolves the write and read commands for the text/html
// flavor on the given platform, or nil when the platform has none.
func probeHTMLTools(goos string, lookPath func(string) (string, error)) (write, read *htmlTool) {
	switch goos {
	case "linux":
		// Prefer the Wayland tool when a Wayland session is active.
		if os.Getenv("WAYLAND_DISPLAY") != "" {
			if _, err := lookPath("wl-copy"); err == nil {
				write = &htmlTool{name: "wl-copy", args: []string{"--type", "text/html"}}
			}
			if _, err := lookPath("wl-paste"); err == nil {
				read = &htmlTool{name: "wl-paste", args: []string{"--type", "text/html", "--no-newline"}}
			}
			if write != nil {
				return write, read
			}
		}
		if _, err := lookPath("xclip"); err == nil {
			write = &htmlTool{name: "xclip", args: []string{"-selection", "clipboard", "-t", "text/html"}}
			read = &htmlTool{name: "xclip", args: []string{"-selection", "clipboard", "-t", "text/html", "-o"}}
		}
		return write, read
	case "darwin":
		if _, err := lookPath("osascript"); err == nil {
			write = &htmlTool{name: "osascript"}
			read = &htmlTool{name: "osascript", args: []string{"-e", appleScriptReadHTML}}
		}
		return write, read
	case "windows":
		if _, err := lookPath("powershell"); err == nil {
			write = &htmlTool{name: "powershell"}
			read = &htmlTool{name: "powershell", args: []string{"-NoProfile", "-Command", "Get-Clipboard -TextFormatType Html"}}
		}
		return write, read
	}
	return nil, nil
}

const appleScriptReadHTML = `the clipboard as «class HTML»`

// SupportsHTML reports whether a text/html write path was found.
func (s *System) SupportsHTML() bool {
	return s.htmlWrite != nil
}

// WriteHTML writes both flavors. On darwin and windows the platform tool
// builds a single clipboard entry carrying both. On Linux each tool
// invocation takes exclusive selection ownership, so a true multi-flavor
// entry is not possible: the plain flavor is written first and the HTML
// flavor last, leaving rich-capable paste targets with the hyperlink while
// plain-only targets fall back to whatever the HTML owner serves.
func (s *System) WriteHTML(ctx context.Context, html, text string) error {
	if s.htmlWrite == nil {
		return pagelink.Errorf(pagelink.EUNAVAILABLE, "no HTML clipboard tool available")
	}

	switch s.goos {
	case "darwin":
		tool := &htmlTool{name: "osascript", args: []string{"-e", appleScriptWriteHTML(html, text)}}
		if out, err := s.runCmd(ctx, tool, ""); err != nil {
			return classifyWriteError(err, out)
		}
		return nil
	case "windows":
		tool := &htmlTool{name: "powershell", args: []string{"-NoProfile", "-Command", powerShellWriteHTML(html, text)}}
		if out, err := s.runCmd(ctx, tool, ""); err != nil {
			return classifyWriteError(err, out)
		}
		return nil
	}

	if err := s.writeText(text); err != nil {
		return classifyWriteError(err, "")
	}
	if out, err := s.runCmd(ctx, s.htmlWrite, html); err != nil {
		return classifyWriteError(err, out)
	}
	return nil
}

// appleScriptWriteHTML builds an AppleScript statement that places an HTML
// record plus plain string on the clipboard. The HTML bytes are hex-encoded
// so no quoting of the markup is needed.
func appleScriptWriteHTML(html, text string) string {
	var sb strings.Builder
	sb.WriteString(`set the clipboard to {«class HTML»:«data HTML`)
	sb.WriteString(strings.ToUpper(hex.EncodeToString([]byte(html))))
	sb.WriteString(`», string:"`)
	sb.WriteString(escapeAppleScript(text))
	sb.WriteString(`"}`)
	return sb.String()
}

func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// powerShellWriteHTML builds a PowerShell command that places one DataObject
// carrying both the CF_HTML and plain-text formats on the clipboard.
func powerShellWriteHTML(html, text string) string {
	var sb strings.Builder
	sb.WriteString("Add-Type -AssemblyName System.Windows.Forms; ")
	sb.WriteString("$d = New-Object System.Windows.Forms.DataObject; ")
	sb.WriteString("$d.SetData([System.Windows.Forms.DataFormats]::Html, '")
	sb.WriteString(escapePowerShell(cfHTML(html)))
	sb.WriteString("'); $d.SetText('")
	sb.WriteString(escapePowerShell(text))
	sb.WriteString("'); [System.Windows.Forms.Clipboard]::SetDataObject($d, $true)")
	return sb.String()
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, `'`, `''`)
}

// cfHTML wraps an HTML fragment in the CF_HTML clipboard format: a header
// of fixed-width byte offsets followed by a marked-up document.
func cfHTML(fragment string) string {
	const (
		prologue = "<html><body><!--StartFragment-->"
		epilogue = "<!--EndFragment--></body></html>"
	)

	// Four 10-digit offsets keep the header length fixed so the offsets can
	// be computed before the header is rendered.
	header := "Version:0.9\r\nStartHTML:%010d\r\nEndHTML:%010d\r\nStartFragment:%010d\r\nEndFragment:%010d\r\n"
	headerLen := len(fmt.Sprintf(header, 0, 0, 0, 0))

	startHTML := headerLen
	startFragment := startHTML + len(prologue)
	endFragment := startFragment + len(fragment)
	endHTML := endFragment + len(epilogue)

	return fmt.Sprintf(header, startHTML, endHTML, startFragment, endFragment) + prologue + fragment + epilogue
}

// WriteText writes the plain-text flavor only.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeText(text); err != nil {
		return classifyWriteError(err, "")
	}
	return nil
}

// Read returns whatever flavors are currently present, best effort. A flavor
// that cannot be read is simply absent.
func (s *System) Read(ctx context.Context) (*pagelink.Payload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := &pagelink.Payload{}
	if text, err := atotto.ReadAll(); err == nil {
		p.Text = text
	}
	if s.htmlRead != nil {
		if out, err := s.runCmd(ctx, s.htmlRead, ""); err == nil {
			p.HTML = strings.TrimSpace(out)
		}
	}
	return p, nil
}

// busyMarkers are substrings of tool output that indicate a transient
// ownership conflict rather than a permanent failure. One delayed retry is
// likely to resolve these.
var busyMarkers = []string{
	"selection owner",
	"clipboard is busy",
	"cannot open display",
	"target string not available",
	"resource temporarily unavailable",
}

// classifyWriteError maps a tool failure to an application error. Transient
// ownership conflicts become EBUSY so the gateway retries once.
func classifyWriteError(err error, output string) error {
	combined := strings.ToLower(err.Error() + " " + output)
	for _, marker := range busyMarkers {
		if strings.Contains(combined, marker) {
			return pagelink.Errorf(pagelink.EBUSY, "clipboard busy: %s", strings.TrimSpace(output))
		}
	}
	return err
}

// runCmd executes a clipboard tool, feeding stdin when non-empty and
// returning the combined output.
func runCmd(ctx context.Context, tool *htmlTool, stdin string) (string, error) {
	cmd := exec.CommandContext(ctx, tool.name, tool.args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}
