package main

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/tui"
)

type previewOptions struct {
	device    string
	premium   bool
	static    bool
	watch     bool
	rootFlags *rootFlags
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{rootFlags: rootFlags}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the results screen at a device size",
		Long: `Launch the interactive preview. The layout follows the terminal size unless
--device selects a catalogue preset. Use --static to print a single frame.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.device, "device", "d", "", "Catalogue device id")
	cmd.Flags().BoolVar(&opts.premium, "premium", false, "Show the full results list")
	cmd.Flags().BoolVar(&opts.static, "static", false, "Print one frame instead of starting the interactive preview")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the --config catalogue when it changes")
	cmd.MarkFlagsMutuallyExclusive("static", "watch")

	return cmd
}

func runPreview(cmd *cobra.Command, opts *previewOptions) error {
	if opts.watch && opts.rootFlags.configPath == "" {
		return newCommandError("preview", "watching the device catalogue", errors.New("no catalogue file given"), "Pass --config with the catalogue to watch.")
	}

	cfg, resolver, err := loadCatalogue("preview", opts.rootFlags)
	if err != nil {
		return err
	}

	if opts.device != "" {
		if _, err := cfg.Device(opts.device); err != nil {
			return newCommandError("preview", fmt.Sprintf("looking up device %q", opts.device), err, "Run 'podium devices' to list the available presets.")
		}
	}

	model := tui.NewModel(tui.Options{
		Catalogue: cfg,
		Resolver:  resolver,
		Logger:    app.Logger,
		DeviceID:  opts.device,
		Premium:   opts.premium,
	})

	if opts.static {
		return renderStaticPreview(cmd, model)
	}

	app.Logger.Info("launching preview")
	program := tea.NewProgram(model, tea.WithAltScreen())

	if opts.watch {
		stop, err := watchCatalogue(cmd.Context(), opts.rootFlags.configPath, program)
		if err != nil {
			return newCommandError("preview", "watching the device catalogue", err, "Check that the catalogue directory exists and is readable.")
		}
		defer stop()
	}

	if _, err := program.Run(); err != nil {
		app.Logger.Error(err, "preview execution failed")
		return fmt.Errorf("failed to run preview: %w", err)
	}
	app.Logger.Info("preview closed")

	return nil
}

// renderStaticPreview prints one frame. Without a device it samples the
// terminal, falling back to 80x24 when output is redirected.
func renderStaticPreview(cmd *cobra.Command, model tui.Model) error {
	if model.DeviceID() == "" {
		cols, rows, ok := terminalSize(cmd.OutOrStdout())
		if !ok {
			cols, rows = 80, 24
		}
		updated, _ := model.Update(tea.WindowSizeMsg{Width: cols, Height: rows})
		model = updated.(tui.Model)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), model.View())
	return err
}

// watchCatalogue forwards catalogue reloads to the running program. The
// returned func stops the watcher and waits for it to exit.
func watchCatalogue(parent context.Context, path string, program *tea.Program) (func(), error) {
	watcher, err := config.NewWatcher(path, app.Logger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(parent)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = watcher.Run(ctx, func(cfg *config.Config, err error) {
			program.Send(tui.CatalogueMsg{Catalogue: cfg, Err: err})
		})
	}()

	return func() {
		cancel()
		<-done
	}, nil
}
