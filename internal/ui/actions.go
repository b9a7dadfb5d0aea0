package ui

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/metsearch/assets"
	"github.com/five82/metsearch/internal/met"
)

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// openExternal hands target to the platform's default viewer without
// waiting for it.
func openExternal(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	return cmd.Start()
}

func (m Model) copySelectedID() tea.Cmd {
	id := m.selectedID()
	if id == "" {
		return statusCmd("Nothing selected")
	}
	return m.copyCmd(id, "Copied object id "+id)
}

func (m Model) copySelectedImage() tea.Cmd {
	src := m.selectedField(met.FieldPrimaryImageSmall)
	if src == "" {
		return statusCmd("No image for this object")
	}
	return m.copyCmd(src, "Copied image URL")
}

func (m Model) copyCmd(text, done string) tea.Cmd {
	copyFn, logger := m.clip, m.logger
	return func() tea.Msg {
		if err := copyFn(text); err != nil {
			logger.Warn("clipboard write failed", "error", err)
			return actionMsg{text: "Clipboard unavailable"}
		}
		return actionMsg{text: done}
	}
}

// openSelectedImage opens the selected object's image. The fallback path
// refers to a local file, which is written from the embedded asset when it
// does not exist yet.
func (m Model) openSelectedImage() tea.Cmd {
	src := m.selectedField(met.FieldPrimaryImageSmall)
	if src == "" {
		return statusCmd("No image for this object")
	}
	fallback := m.ctrl.FallbackImage()
	openFn, logger := m.opener, m.logger
	return func() tea.Msg {
		target := src
		if src == fallback {
			if err := assets.EnsureFile(src); err != nil {
				logger.Warn("write fallback image failed", "path", src, "error", err)
				return actionMsg{text: "Could not write " + src}
			}
			if abs, err := filepath.Abs(src); err == nil {
				target = abs
			}
		}
		if err := openFn(target); err != nil {
			logger.Warn("open image failed", "target", target, "error", err)
			return actionMsg{text: fmt.Sprintf("Could not open %s", truncateMiddle(target, 40))}
		}
		return actionMsg{text: "Opened " + truncateMiddle(target, 60)}
	}
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{text: text}
	}
}
