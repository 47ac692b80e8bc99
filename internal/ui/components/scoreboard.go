package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

// FreeTierRows is how many scoreboard rows a non-premium viewer sees.
const FreeTierRows = 3

// ScoreEntry is one athlete's routine on an apparatus.
type ScoreEntry struct {
	Athlete    string
	Nation     string
	Difficulty float64
	Execution  float64
	Penalty    float64
}

// Total is D + E minus neutral deductions.
func (e ScoreEntry) Total() float64 {
	return e.Difficulty + e.Execution - e.Penalty
}

// Scoreboard is a final on one apparatus.
type Scoreboard struct {
	Championship string
	Apparatus    string
	Entries      []ScoreEntry
}

// Ranked returns the entries sorted by total, highest first. Ties keep the
// higher execution score ahead.
func (b Scoreboard) Ranked() []ScoreEntry {
	ranked := make([]ScoreEntry, len(b.Entries))
	copy(ranked, b.Entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Total() != ranked[j].Total() {
			return ranked[i].Total() > ranked[j].Total()
		}
		return ranked[i].Execution > ranked[j].Execution
	})
	return ranked
}

// SampleScoreboard is mock data for previews.
func SampleScoreboard() Scoreboard {
	return Scoreboard{
		Championship: "World Championships",
		Apparatus:    "Balance Beam Final",
		Entries: []ScoreEntry{
			{Athlete: "R. Andrade", Nation: "BRA", Difficulty: 5.9, Execution: 8.233},
			{Athlete: "A. Zhou", Nation: "CHN", Difficulty: 6.3, Execution: 8.066},
			{Athlete: "S. Lee", Nation: "USA", Difficulty: 6.0, Execution: 7.866},
			{Athlete: "M. Petrova", Nation: "BUL", Difficulty: 5.6, Execution: 8.100, Penalty: 0.1},
			{Athlete: "K. Okamura", Nation: "JPN", Difficulty: 5.4, Execution: 7.933},
			{Athlete: "E. Laurent", Nation: "FRA", Difficulty: 5.7, Execution: 7.400, Penalty: 0.3},
		},
	}
}

// RenderScoreboard composes a results screen for the theme's profile. Viewers
// without premium access see the podium rows and an upgrade prompt.
func RenderScoreboard(theme Theme, board Scoreboard, premium bool) string {
	width := theme.ContentCols()
	if width < 20 {
		width = 20
	}

	header := HeaderStyle(theme).Width(width).Render(board.Championship)
	subtitle := Apply(theme, TextStyle(theme, layout.FontSM), Foreground(PaletteNeutral), MarginBottom(layout.SpaceXS)).
		Render(board.Apparatus)

	ranked := board.Ranked()
	visible := ranked
	if !premium && len(visible) > FreeTierRows {
		visible = visible[:FreeTierRows]
	}

	rows := make([]string, 0, len(visible))
	for i, entry := range visible {
		rows = append(rows, renderScoreRow(theme, i+1, entry, width-4))
	}

	card := CardStyle(theme, layout.ElevationMD).Width(width - 2).Render(strings.Join(rows, "\n"))

	sections := []string{header, subtitle, card}
	if !premium && len(ranked) > FreeTierRows {
		locked := Apply(theme, TextStyle(theme, layout.FontXS), Foreground(PaletteNeutral)).
			Render(fmt.Sprintf("%d more results locked", len(ranked)-FreeTierRows))
		button := ButtonStyle(theme, layout.ButtonLG, PaletteAccent).Width(width).Render("Unlock full results")
		sections = append(sections, locked, button)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderScoreRow(theme Theme, rank int, entry ScoreEntry, width int) string {
	medal := lipgloss.NewStyle().Bold(true)
	switch rank {
	case 1:
		medal = medal.Foreground(theme.Palette.Gold.Base)
	case 2:
		medal = medal.Foreground(theme.Palette.Silver.Base)
	case 3:
		medal = medal.Foreground(theme.Palette.Bronze.Base)
	default:
		medal = medal.Foreground(theme.Palette.Neutral.Base)
	}

	total := fmt.Sprintf("%.3f", entry.Total())
	left := fmt.Sprintf("%s %s %s", medal.Render(fmt.Sprintf("%d.", rank)), entry.Athlete, entry.Nation)

	// Tablets have room for the D/E breakdown.
	if theme.Profile.IsTablet {
		total = fmt.Sprintf("D %.1f  E %.3f  %s", entry.Difficulty, entry.Execution, total)
	}
	right := TextStyle(theme, layout.FontLG).Render(total)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

// RenderTokenSummary lists the resolved tokens, one per line.
func RenderTokenSummary(theme Theme) string {
	p := theme.Profile
	label := Apply(theme, lipgloss.NewStyle(), Foreground(PaletteNeutral))

	lines := []string{
		fmt.Sprintf("%s %.0fx%.0f %s (%s%s)", label.Render("viewport"),
			p.Context.ViewportWidth, p.Context.ViewportHeight, p.Context.Platform, p.Breakpoint, orientation(p)),
		fmt.Sprintf("%s xs %.0f  sm %.0f  md %.0f  lg %.0f  xl %.0f", label.Render("spacing"),
			p.Spacing.XS, p.Spacing.SM, p.Spacing.MD, p.Spacing.LG, p.Spacing.XL),
		fmt.Sprintf("%s sm %.1f  base %.1f  xl %.1f  4xl %.1f", label.Render("fonts"),
			p.Fonts.SM, p.Fonts.Base, p.Fonts.XL, p.Fonts.X4L),
		fmt.Sprintf("%s input %.0f  header %.0f  buttons %.0f/%.0f/%.0f", label.Render("heights"),
			p.Dimensions.InputHeight, p.Dimensions.HeaderHeight,
			p.Dimensions.Buttons.SM, p.Dimensions.Buttons.MD, p.Dimensions.Buttons.LG),
	}
	return strings.Join(lines, "\n")
}

func orientation(p layout.LayoutProfile) string {
	if p.IsLandscape {
		return ", landscape"
	}
	return ""
}
