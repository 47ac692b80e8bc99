package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/layout"
	"github.com/alexisbeaulieu97/podium/pkg/diff"
)

type compareOptions struct {
	rotate    bool
	rootFlags *rootFlags
}

func newCompareCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &compareOptions{rootFlags: rootFlags}

	cmd := &cobra.Command{
		Use:   "compare <device> <device>",
		Short: "Show how the layout profile changes between two devices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.rotate, "rotate", false, "Compare both devices in landscape")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *compareOptions, left, right string) error {
	cfg, resolver, err := loadCatalogue("compare devices", opts.rootFlags)
	if err != nil {
		return err
	}

	leftDoc, err := profileDocument(cfg, resolver, left, opts.rotate)
	if err != nil {
		return err
	}
	rightDoc, err := profileDocument(cfg, resolver, right, opts.rotate)
	if err != nil {
		return err
	}

	out, stats := diff.Lines(leftDoc, rightDoc, left, right)
	if !stats.Changed() {
		fmt.Fprintf(cmd.OutOrStdout(), "%s and %s resolve to the same layout profile.\n", left, right)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d lines changed, %d added, %d removed\n", stats.Added+stats.Removed, stats.Added, stats.Removed)
	return nil
}

// profileDocument renders a device's profile as YAML, leaving out the raw
// context so only token differences show up.
func profileDocument(cfg *config.Config, resolver *layout.Resolver, id string, rotate bool) ([]byte, error) {
	device, err := cfg.Device(id)
	if err != nil {
		return nil, newCommandError("compare devices", fmt.Sprintf("looking up device %q", id), err, "Run 'podium devices' to list the available presets.")
	}

	ctx := device.Context()
	if rotate {
		ctx = ctx.Rotated()
	}

	profile, err := resolver.Resolve(ctx)
	if err != nil {
		return nil, newCommandError("compare devices", fmt.Sprintf("resolving %q", id), err, "Fix the device preset in the catalogue.")
	}

	doc := struct {
		Breakpoint   layout.Breakpoint          `yaml:"breakpoint"`
		Landscape    bool                       `yaml:"landscape"`
		GridColumns  int                        `yaml:"grid_columns"`
		ContentWidth float64                    `yaml:"content_width"`
		Spacing      layout.SpacingScale        `yaml:"spacing"`
		Fonts        map[string]string          `yaml:"fonts"`
		Dimensions   layout.ComponentDimensions `yaml:"dimensions"`
	}{
		Breakpoint:   profile.Breakpoint,
		Landscape:    profile.IsLandscape,
		GridColumns:  profile.GridColumns(),
		ContentWidth: profile.ContentWidth(),
		Spacing:      profile.Spacing,
		Fonts:        make(map[string]string, len(layout.FontSizes())),
		Dimensions:   profile.Dimensions,
	}
	for _, size := range layout.FontSizes() {
		doc.Fonts[size.String()] = formatPx(profile.Font(size))
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
