package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/layout"
	"github.com/alexisbeaulieu97/podium/internal/logger"
	"github.com/alexisbeaulieu97/podium/internal/ui/components"
)

// followTerminal is the device index used when samples come from the window size.
const followTerminal = -1

// SampleMsg delivers a device sample from outside the terminal, such as a
// safe-area change reported by a host shell.
type SampleMsg struct {
	Context layout.DeviceContext
}

// CatalogueMsg delivers a reloaded device catalogue. Err is set when the
// edited file failed to parse, in which case the current catalogue stays.
type CatalogueMsg struct {
	Catalogue *config.Config
	Err       error
}

// Options configures a preview Model.
type Options struct {
	Catalogue *config.Config
	Resolver  *layout.Resolver
	Logger    *logger.Logger
	// DeviceID starts the preview on a catalogue preset instead of the terminal size.
	DeviceID string
	Premium  bool
	Metrics  components.CellMetrics
}

// Model is the Bubbletea state for the layout preview.
type Model struct {
	tracker   *layout.Tracker
	catalogue *config.Config
	metrics   components.CellMetrics
	log       *logger.Logger

	deviceIndex int
	platform    layout.Platform
	rotated     bool
	premium     bool

	sample  layout.DeviceContext
	profile layout.LayoutProfile
	theme   components.Theme
	lastErr error
	// catalogueErr is the most recent rejected catalogue reload.
	catalogueErr error

	// Terminal dimensions in cells.
	width  int
	height int

	keys     keyMap
	help     help.Model
	showHelp bool
	quitting bool
}

// NewModel builds a preview model. It starts on the default profile until the
// first sample arrives.
func NewModel(opts Options) Model {
	catalogue := opts.Catalogue
	if catalogue == nil {
		catalogue = config.DefaultConfig()
	}
	metrics := opts.Metrics
	if metrics.ColumnWidth <= 0 || metrics.RowHeight <= 0 {
		metrics = components.DefaultCellMetrics()
	}

	tracker := layout.NewTracker(opts.Resolver, opts.Logger)
	profile := tracker.Current()

	m := Model{
		tracker:     tracker,
		catalogue:   catalogue,
		metrics:     metrics,
		log:         opts.Logger,
		deviceIndex: followTerminal,
		platform:    layout.PlatformIOS,
		premium:     opts.Premium,
		profile:     profile,
		theme:       components.NewTheme(profile).WithMetrics(metrics),
		keys:        defaultKeyMap(),
		help:        help.New(),
		width:       80,
		height:      24,
	}

	if opts.DeviceID != "" {
		m.selectDeviceByID(opts.DeviceID)
	}

	return m
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// Profile returns the profile currently on screen.
func (m Model) Profile() layout.LayoutProfile {
	return m.profile
}

// Sample returns the device context most recently fed to the tracker.
func (m Model) Sample() layout.DeviceContext {
	return m.sample
}

// CatalogueError returns the error from the most recent rejected catalogue reload.
func (m Model) CatalogueError() error {
	return m.catalogueErr
}

// LastError returns the error from the most recent rejected sample, if any.
func (m Model) LastError() error {
	return m.lastErr
}

// DeviceID returns the active catalogue preset, or "" when following the terminal.
func (m Model) DeviceID() string {
	if m.deviceIndex == followTerminal || m.deviceIndex >= len(m.catalogue.Devices) {
		return ""
	}
	return m.catalogue.Devices[m.deviceIndex].ID
}

// Quitting reports whether the user asked to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) selectDevice(index int) {
	m.deviceIndex = index
	m.rotated = false
	if index != followTerminal {
		m.platform = m.catalogue.Devices[index].Context().Platform
	}
	m.recompute()
}

// selectDeviceByID switches to the preset with id, or back to the terminal
// when the catalogue no longer has it.
func (m *Model) selectDeviceByID(id string) {
	for i, device := range m.catalogue.Devices {
		if device.ID == id {
			m.selectDevice(i)
			return
		}
	}
	m.selectDevice(followTerminal)
}

// reloadCatalogue swaps in a new catalogue and its tuning, keeping the active
// preset when it still exists.
func (m *Model) reloadCatalogue(catalogue *config.Config) error {
	resolver, err := catalogue.Resolver()
	if err != nil {
		return err
	}

	active := m.DeviceID()
	rotated := m.rotated
	platform := m.platform

	m.catalogue = catalogue
	m.tracker = layout.NewTracker(resolver, m.log)
	if active == "" {
		m.selectDevice(followTerminal)
	} else {
		m.selectDeviceByID(active)
	}
	if m.DeviceID() == active {
		m.rotated = rotated
		m.platform = platform
		m.recompute()
	}
	return nil
}

func (m *Model) nextDevice() {
	if len(m.catalogue.Devices) == 0 {
		return
	}
	next := m.deviceIndex + 1
	if next >= len(m.catalogue.Devices) {
		next = 0
	}
	m.selectDevice(next)
}

// currentSample builds the device context for the active source.
func (m Model) currentSample() layout.DeviceContext {
	var ctx layout.DeviceContext
	if m.deviceIndex == followTerminal {
		ctx = layout.DeviceContext{
			ViewportWidth:  float64(m.width) * m.metrics.ColumnWidth,
			ViewportHeight: float64(m.height) * m.metrics.RowHeight,
		}
	} else {
		ctx = m.catalogue.Devices[m.deviceIndex].Context()
	}
	ctx.Platform = m.platform
	if m.rotated {
		ctx = ctx.Rotated()
	}
	return ctx
}

func (m *Model) recompute() {
	m.apply(m.currentSample())
}

// apply feeds one sample through the tracker and rebuilds the theme.
func (m *Model) apply(ctx layout.DeviceContext) {
	m.sample = ctx
	profile, err := m.tracker.Update(ctx)
	m.lastErr = err
	m.profile = profile
	m.theme = components.NewTheme(profile).WithMetrics(m.metrics)
}
