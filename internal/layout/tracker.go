package layout

import (
	"errors"

	"github.com/alexisbeaulieu97/podium/internal/logger"
	podiumerrors "github.com/alexisbeaulieu97/podium/pkg/errors"
)

// Tracker is the render-loop call site: feed it every viewport sample and it
// hands back the profile to draw with. Rejected samples keep the last good
// profile on screen. A Tracker belongs to one UI loop and is not safe for
// concurrent use.
type Tracker struct {
	resolver *Resolver
	log      *logger.Logger
	current  LayoutProfile
	hasGood  bool
}

// NewTracker creates a tracker. A nil resolver uses DefaultResolver.
func NewTracker(resolver *Resolver, log *logger.Logger) *Tracker {
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &Tracker{resolver: resolver, log: log, current: DefaultProfile()}
}

// Update recomputes the profile for ctx. On an invalid sample it returns the
// last known-good profile (or DefaultProfile) together with the error.
func (t *Tracker) Update(ctx DeviceContext) (LayoutProfile, error) {
	profile, err := t.resolver.Resolve(ctx)
	if err != nil {
		fallback := "default"
		if t.hasGood {
			fallback = "last_known_good"
		}
		field := ""
		var ctxErr *podiumerrors.InvalidDeviceContextError
		if errors.As(err, &ctxErr) {
			field = ctxErr.Field
		}
		t.log.WarnErr(err, "device sample rejected", "fallback", fallback, "field", field)
		return t.current, err
	}

	t.current = profile
	t.hasGood = true
	t.log.Debug("layout profile recomputed",
		"width", ctx.ViewportWidth,
		"height", ctx.ViewportHeight,
		"platform", ctx.Platform.String(),
		"breakpoint", profile.Breakpoint.String(),
	)

	return profile, nil
}

// Current returns the profile from the most recent accepted sample.
func (t *Tracker) Current() LayoutProfile {
	return t.current
}

// HasSample reports whether any sample has been accepted yet.
func (t *Tracker) HasSample() bool {
	return t.hasGood
}
