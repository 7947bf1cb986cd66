// Package fragment composes the hosts fragment text: a timestamped header,
// one line per domain and a closing footer.
package fragment

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/yhjyhjlqx/google520/internal/config"
	"github.com/yhjyhjlqx/google520/internal/hostsfile"
)

// Clock returns the current time.
type Clock interface {
	Now() (now time.Time)
}

// SystemClock is the [Clock] backed by the local wall clock.
type SystemClock struct{}

// type check
var _ Clock = SystemClock{}

// Now implements the [Clock] interface for SystemClock.
func (SystemClock) Now() (now time.Time) { return time.Now() }

// ClockFunc adapts a function to the [Clock] interface.
type ClockFunc func() time.Time

// type check
var _ Clock = ClockFunc(nil)

// Now implements the [Clock] interface for ClockFunc.
func (f ClockFunc) Now() (now time.Time) { return f() }

// Builder renders fragments for a fixed banner.
type Builder struct {
	banner config.Banner
	clock  Clock
}

// NewBuilder creates a builder. A nil clock means [SystemClock].
func NewBuilder(banner config.Banner, clock Clock) *Builder {
	if clock == nil {
		clock = SystemClock{}
	}

	return &Builder{
		banner: banner,
		clock:  clock,
	}
}

// Header returns the banner lines stamped with now, ending with a blank line.
func (b *Builder) Header(now time.Time) string {
	return fmt.Sprintf("%s\n# Last updated: %s\n# Project: %s\n\n",
		b.banner.StartMarker(),
		now.Local().Format(b.banner.TimeLayout),
		b.banner.ProjectURL,
	)
}

// Footer returns the closing line, preceded by a newline.
func (b *Builder) Footer() string {
	return "\n" + b.banner.EndMarker()
}

// Body returns one "<ip> <domain>" line per domain joined by newlines, with
// no trailing newline. It is empty for an empty list.
func (b *Builder) Body(domains []string, ip string) string {
	lines := lo.Map(hostsfile.EntriesFor(ip, domains), func(e hostsfile.Entry, _ int) string {
		return e.String()
	})

	return strings.Join(lines, "\n")
}

// Build returns the complete fragment for domains mapped to ip. The
// timestamp is taken from the builder's clock once per call.
func (b *Builder) Build(domains []string, ip string) string {
	return b.Header(b.clock.Now()) + b.Body(domains, ip) + b.Footer()
}
