package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/layout"
	"github.com/alexisbeaulieu97/podium/internal/ui/components"
)

type resolveOptions struct {
	device    string
	width     float64
	height    float64
	platform  string
	rotate    bool
	terminal  bool
	insets    layout.Insets
	output    string
	rootFlags *rootFlags
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{rootFlags: rootFlags}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the layout profile for a device sample",
		Long: `Resolve the breakpoint, spacing scale, font scale and component dimensions
for a device. The sample comes from a catalogue preset (--device), the current
terminal (--terminal) or explicit --width/--height values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.device, "device", "d", "", "Catalogue device id")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "Viewport width in logical pixels")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "Viewport height in logical pixels")
	cmd.Flags().StringVarP(&opts.platform, "platform", "p", string(layout.PlatformIOS), "Platform (ios or android)")
	cmd.Flags().BoolVar(&opts.rotate, "rotate", false, "Swap width and height before resolving")
	cmd.Flags().BoolVar(&opts.terminal, "terminal", false, "Sample the current terminal size")
	cmd.Flags().Float64Var(&opts.insets.Top, "inset-top", 0, "Safe-area top inset")
	cmd.Flags().Float64Var(&opts.insets.Bottom, "inset-bottom", 0, "Safe-area bottom inset")
	cmd.Flags().Float64Var(&opts.insets.Left, "inset-left", 0, "Safe-area left inset")
	cmd.Flags().Float64Var(&opts.insets.Right, "inset-right", 0, "Safe-area right inset")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "Output format (table, json, yaml)")
	cmd.MarkFlagsMutuallyExclusive("device", "terminal")

	return cmd
}

func runResolve(cmd *cobra.Command, opts *resolveOptions) error {
	format, err := validateOutputFormat(opts.output)
	if err != nil {
		return newCommandError("resolve", "parsing flags", err, "Use --output table, json or yaml.")
	}

	cfg, resolver, err := loadCatalogue("resolve", opts.rootFlags)
	if err != nil {
		return err
	}

	ctx, err := buildSample(cmd, opts, cfg)
	if err != nil {
		return err
	}

	profile, err := resolver.Resolve(ctx)
	if err != nil {
		app.Logger.Error(err, "device sample rejected",
			"viewport_width", ctx.ViewportWidth,
			"viewport_height", ctx.ViewportHeight,
			"platform", ctx.Platform,
		)
		return newCommandError("resolve", "resolving layout profile", err, "Viewport dimensions must be positive, the platform must be ios or android and safe-area insets must not be negative.")
	}

	app.Logger.Debug("layout profile resolved",
		"breakpoint", profile.Breakpoint.String(),
		"viewport_width", profile.Context.ViewportWidth,
	)

	if format == outputTable {
		return renderProfileTable(cmd, profile)
	}
	return writeStructured(cmd.OutOrStdout(), format, profile)
}

// buildSample assembles the device context from flags. Validation is left to
// the resolver so every bad sample is reported the same way.
func buildSample(cmd *cobra.Command, opts *resolveOptions, cfg *config.Config) (layout.DeviceContext, error) {
	var ctx layout.DeviceContext
	flags := cmd.Flags()

	switch {
	case opts.device != "":
		device, err := cfg.Device(opts.device)
		if err != nil {
			return ctx, newCommandError("resolve", fmt.Sprintf("looking up device %q", opts.device), err, "Run 'podium devices' to list the available presets.")
		}
		ctx = device.Context()
		if !flags.Changed("platform") {
			opts.platform = string(ctx.Platform)
		}
	case opts.terminal:
		cols, rows, ok := terminalSize(cmd.OutOrStdout())
		if !ok {
			return ctx, newCommandError("resolve", "sampling terminal size", errors.New("standard output is not a terminal"), "Pass --width and --height instead.")
		}
		metrics := components.DefaultCellMetrics()
		ctx.ViewportWidth = float64(cols) * metrics.ColumnWidth
		ctx.ViewportHeight = float64(rows) * metrics.RowHeight
	default:
		if !flags.Changed("width") || !flags.Changed("height") {
			return ctx, newCommandError("resolve", "reading viewport", errors.New("no device sample given"), "Pass --device, --terminal, or both --width and --height.")
		}
		ctx.ViewportWidth = opts.width
		ctx.ViewportHeight = opts.height
	}

	platform, err := layout.ParsePlatform(opts.platform)
	if err != nil {
		platform = layout.Platform(opts.platform)
	}
	ctx.Platform = platform

	if flags.Changed("inset-top") {
		ctx.SafeArea.Top = opts.insets.Top
	}
	if flags.Changed("inset-bottom") {
		ctx.SafeArea.Bottom = opts.insets.Bottom
	}
	if flags.Changed("inset-left") {
		ctx.SafeArea.Left = opts.insets.Left
	}
	if flags.Changed("inset-right") {
		ctx.SafeArea.Right = opts.insets.Right
	}

	if opts.rotate {
		ctx = ctx.Rotated()
	}

	return ctx, nil
}

func renderProfileTable(cmd *cobra.Command, profile layout.LayoutProfile) error {
	useUnicode := supportsUnicode(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	orientation := "portrait"
	if profile.IsLandscape {
		orientation = "landscape"
	}
	insets := profile.Context.SafeArea

	fmt.Fprintln(writer, sectionHeading("PROFILE", useUnicode))
	fmt.Fprintf(writer, "breakpoint\t%s\n", profile.Breakpoint)
	fmt.Fprintf(writer, "platform\t%s\n", profile.Context.Platform)
	fmt.Fprintf(writer, "viewport\t%s x %s (%s)\n", formatPx(profile.Context.ViewportWidth), formatPx(profile.Context.ViewportHeight), orientation)
	fmt.Fprintf(writer, "safe area\ttop %s, bottom %s, left %s, right %s\n", formatPx(insets.Top), formatPx(insets.Bottom), formatPx(insets.Left), formatPx(insets.Right))
	fmt.Fprintf(writer, "content width\t%s\n", formatPx(profile.ContentWidth()))
	fmt.Fprintf(writer, "grid columns\t%d\n", profile.GridColumns())

	fmt.Fprintln(writer, "\n"+sectionHeading("SPACING", useUnicode))
	for _, size := range layout.SpaceSizes() {
		fmt.Fprintf(writer, "%s\t%s\n", size, formatPx(profile.Space(size)))
	}

	fmt.Fprintln(writer, "\n"+sectionHeading("FONTS", useUnicode))
	for _, size := range layout.FontSizes() {
		fmt.Fprintf(writer, "%s\t%s\t(nominal %s)\n", size, formatPx(profile.Font(size)), formatPx(size.Nominal()))
	}

	fmt.Fprintln(writer, "\n"+sectionHeading("DIMENSIONS", useUnicode))
	fmt.Fprintf(writer, "input height\t%s\n", formatPx(profile.Dimensions.InputHeight))
	fmt.Fprintf(writer, "header height\t%s\n", formatPx(profile.Dimensions.HeaderHeight))
	for _, size := range layout.ButtonSizes() {
		fmt.Fprintf(writer, "button %s\t%s\n", size, formatPx(profile.ButtonHeight(size)))
	}

	return writer.Flush()
}
