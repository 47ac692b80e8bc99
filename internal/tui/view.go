package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/podium/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{titleStyle.Render(fmt.Sprintf("Podium layout • %s", m.sourceLabel()))}

	if m.catalogueErr != nil {
		sections = append(sections, warningStyle.Render(fmt.Sprintf("Catalogue reload failed, keeping previous presets: %v", m.catalogueErr)))
	}

	if m.lastErr != nil {
		sections = append(sections, warningStyle.Render(fmt.Sprintf("Sample rejected, showing last good layout: %v", m.lastErr)))
	}

	sections = append(sections,
		summaryStyle.Render(components.RenderTokenSummary(m.theme)),
		components.RenderScoreboard(m.theme, components.SampleScoreboard(), m.premium),
		helpStyle.Render(m.help.View(m.keys)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) sourceLabel() string {
	label := fmt.Sprintf("terminal %dx%d", m.width, m.height)
	if m.deviceIndex != followTerminal {
		label = m.catalogue.Devices[m.deviceIndex].DisplayName()
	}
	if m.rotated {
		label += " (rotated)"
	}
	if m.premium {
		label += " • premium"
	}
	return label
}
