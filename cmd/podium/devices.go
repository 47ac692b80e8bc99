package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/podium/internal/config"
	"github.com/alexisbeaulieu97/podium/internal/layout"
)

type devicesOptions struct {
	jsonOutput bool
	rootFlags  *rootFlags
}

func newDevicesCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &devicesOptions{rootFlags: rootFlags}

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List the device presets in the catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDevices(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runDevices(cmd *cobra.Command, opts *devicesOptions) error {
	cfg, _, err := loadCatalogue("list devices", opts.rootFlags)
	if err != nil {
		return err
	}

	devices := append([]config.DeviceConfig(nil), cfg.Devices...)
	sort.Slice(devices, func(i, j int) bool {
		return devices[i].ID < devices[j].ID
	})

	if opts.jsonOutput {
		return renderDevicesJSON(cmd, devices)
	}
	return renderDevicesTable(cmd, devices)
}

func renderDevicesTable(cmd *cobra.Command, devices []config.DeviceConfig) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tNAME\tPLATFORM\tSIZE\tBREAKPOINT")

	for _, device := range devices {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%sx%s\t%s\n",
			device.ID,
			device.DisplayName(),
			device.Context().Platform,
			formatPx(device.Width),
			formatPx(device.Height),
			layout.Classify(device.Width),
		)
	}

	return writer.Flush()
}

type devicesJSONDevice struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Platform   layout.Platform   `json:"platform"`
	Width      float64           `json:"width"`
	Height     float64           `json:"height"`
	SafeArea   layout.Insets     `json:"safe_area"`
	Breakpoint layout.Breakpoint `json:"breakpoint"`
}

type devicesJSONPayload struct {
	Version string              `json:"version"`
	Count   int                 `json:"count"`
	Devices []devicesJSONDevice `json:"devices"`
}

func renderDevicesJSON(cmd *cobra.Command, devices []config.DeviceConfig) error {
	payload := devicesJSONPayload{
		Version: "1.0",
		Count:   len(devices),
		Devices: make([]devicesJSONDevice, len(devices)),
	}

	for i, device := range devices {
		ctx := device.Context()
		payload.Devices[i] = devicesJSONDevice{
			ID:         device.ID,
			Name:       device.DisplayName(),
			Platform:   ctx.Platform,
			Width:      ctx.ViewportWidth,
			Height:     ctx.ViewportHeight,
			SafeArea:   ctx.SafeArea,
			Breakpoint: layout.Classify(ctx.ViewportWidth),
		}
	}

	return writeStructured(cmd.OutOrStdout(), outputJSON, payload)
}
