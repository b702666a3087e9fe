// seehuhn.de/go/tessellate - curve discretization for solid modeling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package tessellate

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Resolution holds the three resolution parameters which control how
// curved geometry is approximated by straight segments.
//
// The zero value is not useful; use one of the constructors.
// A Resolution is immutable and may be shared between goroutines.
type Resolution struct {
	fn float64 // fixed number of fragments, 0 means unused
	fs float64 // minimal fragment length
	fa float64 // minimal fragment angle, in degrees
}

// Lookup returns the value of a named numeric parameter.
// The boolean result is false if the parameter is not set
// or is not a number.
type Lookup func(name string) (float64, bool)

// NewResolution returns a Resolution for already resolved parameter values.
//
// Values of fs and fa below [MinimumFragment] are raised to that value,
// and a negative fn is replaced by 0. Each correction is reported as a
// warning via [Logger].
func NewResolution(fn, fs, fa float64) Resolution {
	return newResolution(fn, fs, fa, "")
}

// ResolutionFromVariables reads the special variables $fn, $fs and $fa
// from the scene language. Variables which are not set take the language
// defaults [DefaultFN], [DefaultFS] and [DefaultFA].
//
// The location, if non-empty, is attached to any warning.
func ResolutionFromVariables(lookup Lookup, location string) Resolution {
	fn := lookupOr(lookup, "$fn", DefaultFN)
	fs := lookupOr(lookup, "$fs", DefaultFS)
	fa := lookupOr(lookup, "$fa", DefaultFA)
	return newResolution(fn, fs, fa, location)
}

// ResolutionFromHost reads the parameters fn, fs and fa, without the "$"
// prefix, as used by the scripting host. Missing parameters take the
// host defaults [HostDefaultFN], [HostDefaultFS] and [HostDefaultFA].
func ResolutionFromHost(lookup Lookup) Resolution {
	fn := lookupOr(lookup, "fn", HostDefaultFN)
	fs := lookupOr(lookup, "fs", HostDefaultFS)
	fa := lookupOr(lookup, "fa", HostDefaultFA)
	return newResolution(fn, fs, fa, "")
}

// LegacyResolution returns the fixed resolution used by the legacy
// dimension queries: $fn = 36, with $fs and $fa disabled.
func LegacyResolution() Resolution {
	return NewLegacyResolution(legacyFN)
}

// NewLegacyResolution returns a resolution for the legacy code paths,
// which only use a fragment count. The count is raised to at least 5.
// fs and fa are left at 0, meaning they are ignored.
func NewLegacyResolution(fn float64) Resolution {
	if fn < legacyMinFN {
		fn = legacyMinFN
	}
	return Resolution{fn: fn}
}

func newResolution(fn, fs, fa float64, location string) Resolution {
	r := Resolution{fn: fn, fs: fs, fa: fa}
	if r.fs < MinimumFragment {
		warnClamped("$fs", fs, MinimumFragment, location)
		r.fs = MinimumFragment
	}
	if r.fa < MinimumFragment {
		warnClamped("$fa", fa, MinimumFragment, location)
		r.fa = MinimumFragment
	}
	if r.fn < 0 {
		warnClamped("$fn", fn, 0, location)
		r.fn = 0
	}
	return r
}

func lookupOr(lookup Lookup, name string, def float64) float64 {
	if lookup == nil {
		return def
	}
	if v, ok := lookup(name); ok {
		return v
	}
	return def
}

func warnClamped(param string, value, clamped float64, location string) {
	attrs := []any{
		slog.String("param", param),
		slog.Float64("value", value),
		slog.Float64("clamped", clamped),
	}
	if location != "" {
		attrs = append(attrs, slog.String("location", location))
	}
	if value < 0 && param == "$fn" {
		Logger().Warn("negative "+param+" ignored", attrs...)
		return
	}
	Logger().Warn(param+" too small, clamping", attrs...)
}

// FN returns the fixed fragment count. Zero means that FS and FA
// determine the resolution.
func (r Resolution) FN() float64 { return r.fn }

// FS returns the minimal length of a fragment.
func (r Resolution) FS() float64 { return r.fs }

// FA returns the minimal angle of a fragment, in degrees.
func (r Resolution) FA() float64 { return r.fa }

// String formats the resolution the way node dumps show it.
func (r Resolution) String() string {
	return fmt.Sprintf("$fn = %s, $fa = %s, $fs = %s",
		formatNumber(r.fn), formatNumber(r.fa), formatNumber(r.fs))
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Default values for the resolution parameters.
const (
	// MinimumFragment is the smallest accepted value for $fs and $fa.
	MinimumFragment = 0.01

	// DefaultFN, DefaultFS and DefaultFA are the defaults of the scene
	// language for $fn, $fs and $fa.
	DefaultFN = 0.0
	DefaultFS = 2.0
	DefaultFA = 12.0

	// HostDefaultFN, HostDefaultFS and HostDefaultFA are the defaults used
	// when the parameters come from the scripting host.
	HostDefaultFN = 0.0
	HostDefaultFS = 2.0
	HostDefaultFA = 12.0

	legacyFN    = 36.0
	legacyMinFN = 5.0
)
