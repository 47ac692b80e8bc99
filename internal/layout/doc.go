// Package layout resolves device metrics into the design tokens the results
// client renders with.
//
// A DeviceContext (viewport size, platform and safe-area insets) maps to a
// LayoutProfile through Resolve:
//
//	profile, err := layout.Resolve(layout.DeviceContext{
//		ViewportWidth:  390,
//		ViewportHeight: 844,
//		Platform:       layout.PlatformIOS,
//	})
//	if err != nil {
//		profile = layout.DefaultProfile()
//	}
//	padding := profile.Space(layout.SpaceMD)
//	title := profile.Font(layout.Font2XL)
//
// The mapping is pure: no caching and no hidden state. Render loops that need
// last-known-good behavior use a Tracker. Shadow styles come from
// ResolveShadow, which never fails.
package layout
