package cmdUtils

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseArgsDefaults(t *testing.T) {
	o, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("ParseArgs(nil): %v", err)
	}
	if diff := cmp.Diff(DefaultOptions(), o); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if o.Points != 100 || o.Plots != 0 {
		t.Fatalf("points=%d plots=%d; want 100 and all", o.Points, o.Plots)
	}
}

func TestParseArgs(t *testing.T) {
	o, err := ParseArgs([]string{"points=50", "plots=3", "file=xs.dat", "interval=2s", "ymin=1e-8", "ymax=1", "-v"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	want := DefaultOptions()
	want.Points = 50
	want.Plots = 3
	want.File = "xs.dat"
	want.Interval = 2 * time.Second
	want.YMin = 1e-8
	want.YMax = 1
	want.Verbose = true
	if diff := cmp.Diff(want, o); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	o, err = ParseArgs([]string{"plots=3", "plots=all", "-vv"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.Plots != 0 || !o.VeryVerbose {
		t.Fatalf("plots=%d veryVerbose=%v; want 0 true", o.Plots, o.VeryVerbose)
	}
}

func TestParseArgsHelp(t *testing.T) {
	for _, arg := range []string{"--help", "-h"} {
		if _, err := ParseArgs([]string{"points=5", arg, "foo=bar"}); !errors.Is(err, ErrHelp) {
			t.Fatalf("ParseArgs(%q) err=%v; want ErrHelp", arg, err)
		}
	}
}

func TestParseArgsErrors(t *testing.T) {
	tcs := []struct {
		args []string
		keys []string
		bad  string
	}{
		{args: []string{"foo=bar"}, bad: "foo=bar"},
		{args: []string{"points=50", "stray"}, bad: "stray"},
		{args: []string{"points=abc"}, bad: "points=abc"},
		{args: []string{"points=0"}, bad: "points=0"},
		{args: []string{"plots=-1"}, bad: "plots=-1"},
		{args: []string{"interval=soon"}, bad: "interval=soon"},
		{args: []string{"ymin=0"}, bad: "ymin=0"},
		{args: []string{"out=dir"}, keys: ViewerKeys, bad: "out=dir"},
		{args: []string{"interval=1s"}, keys: FrameKeys, bad: "interval=1s"},
		{args: []string{"ymin=1", "ymax=0.5"}, bad: "ymin=1 ymax=0.5"},
		{args: []string{"ymin=1e0", "points=5", "ymax=5e-1"}, bad: "ymin=1e0 ymax=5e-1"},
		{args: []string{"ymin=0.75"}, bad: "ymin=0.75"},
		{args: []string{"ymax=1e-7"}, bad: "ymax=1e-7"},
	}

	for _, tc := range tcs {
		_, err := ParseArgs(tc.args, tc.keys...)
		var argErr *ArgError
		if !errors.As(err, &argErr) {
			t.Fatalf("ParseArgs(%q) err=%v; want *ArgError", tc.args, err)
		}
		if argErr.Arg != tc.bad {
			t.Fatalf("ParseArgs(%q) names %q; want %q", tc.args, argErr.Arg, tc.bad)
		}
		if !strings.Contains(err.Error(), tc.bad) {
			t.Fatalf("ParseArgs(%q) message %q does not name %q", tc.args, err, tc.bad)
		}
	}
}

func TestReportArgError(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseArgs([]string{"foo=bar"}, ViewerKeys...)
	ReportArgError(&buf, "xsplot", err, ViewerKeys...)

	out := buf.String()
	usageAt := strings.Index(out, "usage:")
	if i := strings.Index(out, "foo=bar"); i < 0 || usageAt < i {
		t.Fatalf("output does not name foo=bar before usage:\n%s", out)
	}
	for _, want := range []string{"points=", "plots=", "[Default:  100]", "[Default:  all]"} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "out=") {
		t.Fatalf("viewer usage lists out=:\n%s", out)
	}
}

func TestPrintProgress(t *testing.T) {
	var buf bytes.Buffer
	start := time.Now().Add(-time.Second)

	PrintProgress(&buf, start, 3, 2)
	if buf.Len() != 0 {
		t.Fatalf("PrintProgress wrote off-interval: %q", buf.String())
	}

	PrintProgress(&buf, start, 4, 2)
	if !strings.Contains(buf.String(), "rendered 4 frames") {
		t.Fatalf("PrintProgress=%q; want frame count", buf.String())
	}
}
