// Package components turns a layout profile into terminal styles.
//
// A Theme wraps one layout.LayoutProfile plus a palette and the pixel size of
// a terminal cell. Factories such as ButtonStyle, CardStyle and HeaderStyle
// read heights, spacing and shadows from the profile and convert them to
// columns and rows, so the same screen code previews a small phone, a large
// phone or a tablet. Rebuild the Theme whenever the profile changes:
//
//	theme := components.NewTheme(profile)
//	out := components.RenderScoreboard(theme, components.SampleScoreboard(), false)
package components
