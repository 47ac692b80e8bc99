package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

// Update handles Bubbletea messages. Every message that changes the viewport
// recomputes the layout profile.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.deviceIndex == followTerminal {
			m.recompute()
		}
		return m, nil

	case SampleMsg:
		m.apply(msg.Context)
		return m, nil

	case CatalogueMsg:
		err := msg.Err
		if err == nil && msg.Catalogue != nil {
			err = m.reloadCatalogue(msg.Catalogue)
		}
		m.catalogueErr = err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp

	case key.Matches(msg, m.keys.Rotate):
		m.rotated = !m.rotated
		m.recompute()

	case key.Matches(msg, m.keys.Platform):
		if m.platform == layout.PlatformAndroid {
			m.platform = layout.PlatformIOS
		} else {
			m.platform = layout.PlatformAndroid
		}
		m.recompute()

	case key.Matches(msg, m.keys.Device):
		m.nextDevice()

	case key.Matches(msg, m.keys.Terminal):
		m.selectDevice(followTerminal)

	case key.Matches(msg, m.keys.Premium):
		m.premium = !m.premium
	}

	return m, nil
}
