package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/podium/internal/layout"
)

type shadowOptions struct {
	platform string
	output   string
}

func newShadowCmd() *cobra.Command {
	opts := &shadowOptions{}

	cmd := &cobra.Command{
		Use:       "shadow <level>",
		Short:     "Print the platform shadow for an elevation level",
		Long:      `Print the shadow style for an elevation level (none, sm, base, md, lg, xl). Unknown levels fall back to base.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: elevationNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShadow(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.platform, "platform", "p", string(layout.PlatformIOS), "Platform (ios or android)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "Output format (table, json, yaml)")

	return cmd
}

func elevationNames() []string {
	levels := layout.ElevationLevels()
	names := make([]string, len(levels))
	for i, level := range levels {
		names[i] = string(level)
	}
	return names
}

func runShadow(cmd *cobra.Command, opts *shadowOptions, rawLevel string) error {
	format, err := validateOutputFormat(opts.output)
	if err != nil {
		return newCommandError("shadow", "parsing flags", err, "Use --output table, json or yaml.")
	}

	platform, err := layout.ParsePlatform(opts.platform)
	if err != nil {
		return newCommandError("shadow", "parsing platform", err, "Use --platform ios or --platform android.")
	}

	level := layout.ElevationLevel(rawLevel)
	if !level.Known() {
		app.Logger.Debug("unknown elevation level, using base", "elevation", rawLevel)
	}

	token := layout.ResolveShadow(level, platform)
	if format != outputTable {
		return writeStructured(cmd.OutOrStdout(), format, token)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "level\t%s\n", token.Level)
	fmt.Fprintf(writer, "platform\t%s\n", token.Platform)
	switch {
	case token.IOS != nil:
		fmt.Fprintf(writer, "shadow color\t%s\n", token.IOS.Color)
		fmt.Fprintf(writer, "shadow offset\t%s, %s\n", formatPx(token.IOS.Offset.Width), formatPx(token.IOS.Offset.Height))
		fmt.Fprintf(writer, "shadow opacity\t%s\n", formatPx(token.IOS.Opacity))
		fmt.Fprintf(writer, "shadow radius\t%s\n", formatPx(token.IOS.Radius))
	case token.Android != nil:
		fmt.Fprintf(writer, "elevation\t%d\n", token.Android.Elevation)
		if token.Android.Tint != "" {
			fmt.Fprintf(writer, "shadow color\t%s\n", token.Android.Tint)
		}
	}
	return writer.Flush()
}
