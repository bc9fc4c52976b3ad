package tui

import (
	"encoding/base64"
	"mime"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// loadLogoCmd reads a logo file off the event loop and reports back. Two
// rapid selections resolve last-write-wins by completion order.
func loadLogoCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return logoErrorMsg{Path: path, Err: err}
		}

		contentType := mime.TypeByExtension(filepath.Ext(path))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		ref := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		return logoLoadedMsg{Path: path, Ref: ref}
	}
}
