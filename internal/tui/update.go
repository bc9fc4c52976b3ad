package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/facturakit/facturakit/internal/template"
)

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetCompact(m.width > 0 && m.width < fullPreviewMinWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case logoLoadedMsg:
		m.editor.AttachLogo(msg.Ref)
		m.status = "Logotipo cargado: " + msg.Path
		if m.log != nil {
			m.log.WithFields(map[string]any{"path": msg.Path}).Debug("logo attached")
		}
		return m, nil

	case logoErrorMsg:
		// Unreadable file keeps the previous logo.
		m.status = "No se pudo leer el logotipo: " + msg.Err.Error()
		if m.log != nil {
			m.log.Warn("logo load failed: " + msg.Err.Error())
		}
		return m, nil
	}

	if m.mode != ModeBrowse {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeEdit:
		return m.handleEditKey(msg)
	case ModeLogo:
		return m.handleLogoKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.fields()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}

	case "enter":
		if m.cursor < len(fields) {
			m.mode = ModeEdit
			m.input.SetValue(fields[m.cursor].Value(m.editor.Draft()))
			m.input.CursorEnd()
			m.input.Focus()
			m.status = ""
		}

	case "t":
		m.cycleTemplate(1)

	case "T":
		m.cycleTemplate(-1)

	case "c":
		m.cycleAccent()

	case "a":
		m.editor.AddItem()
		m.cursor = len(m.fields()) - 3
		m.status = "Concepto añadido"

	case "d":
		if m.cursor < len(fields) && fields[m.cursor].ItemID != "" {
			if err := m.editor.RemoveItem(fields[m.cursor].ItemID); err != nil {
				m.status = err.Error()
				break
			}
			if last := len(m.fields()) - 1; m.cursor > last {
				m.cursor = last
			}
			m.status = "Concepto eliminado"
		}

	case "L":
		m.mode = ModeLogo
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Ruta del logotipo y enter"
	}

	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		fields := m.fields()
		if m.cursor < len(fields) {
			if err := fields[m.cursor].Apply(m.editor, m.input.Value()); err != nil {
				m.status = err.Error()
				return m, nil
			}
		}
		m.mode = ModeBrowse
		m.input.Blur()
		m.status = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleLogoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeBrowse
		m.input.Blur()
		return m, nil

	case "enter":
		path := m.input.Value()
		m.mode = ModeBrowse
		m.input.Blur()
		if path == "" {
			m.editor.AttachLogo("")
			m.status = "Logotipo eliminado"
			return m, nil
		}
		m.status = "Leyendo " + path
		return m, loadLogoCmd(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// cycleTemplate moves through the catalog in display order, wrapping at the
// ends. Switching resets the accent to the new template's default.
func (m *Model) cycleTemplate(step int) {
	catalog := template.All()
	current := m.editor.Template().ID

	idx := 0
	for i, tpl := range catalog {
		if tpl.ID == current {
			idx = i
			break
		}
	}
	next := catalog[(idx+step+len(catalog))%len(catalog)]
	if err := m.editor.SetTemplate(next.ID); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Plantilla: " + next.DisplayName
}

// cycleAccent steps through the expanded palette of the current template.
func (m *Model) cycleAccent() {
	choices := m.editor.AccentChoices()
	if len(choices) == 0 {
		return
	}

	current := m.editor.Draft().AccentColor
	idx := -1
	for i, c := range choices {
		if c == current {
			idx = i
			break
		}
	}
	next := choices[(idx+1+len(choices))%len(choices)]
	if err := m.editor.SetAccentColor(next); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "Acento: " + next
}
