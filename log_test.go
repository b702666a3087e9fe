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
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// captureLog directs the package logger into a buffer for the duration
// of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })
	return buf
}

func TestLoggerDefaultSilent(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLoggerNil(t *testing.T) {
	buf := captureLog(t)
	SetLogger(nil)
	NewResolution(0, 0, 12)
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
	if Logger() == nil {
		t.Error("nil logger after SetLogger(nil)")
	}
}

func TestWarningAttributes(t *testing.T) {
	buf := captureLog(t)
	ResolutionFromVariables(func(name string) (float64, bool) {
		if name == "$fa" {
			return 0.005, true
		}
		return 0, false
	}, "widget.scad:3")

	out := buf.String()
	for _, want := range []string{"level=WARN", "$fa too small", "value=0.005", "clamped=0.01", "widget.scad:3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}
