package cmdUtils

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ErrHelp is returned by ParseArgs when usage was asked for.
var ErrHelp = errors.New("help requested")

// ArgError names a command-line argument that matched none of the
// recognised forms.
type ArgError struct {
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not interpret argument %q: %v", e.Arg, e.Err)
	}
	return fmt.Sprintf("unrecognized argument %q", e.Arg)
}

func (e *ArgError) Unwrap() error { return e.Err }

// Options is the run configuration, fixed at startup.
type Options struct {
	File     string
	Points   int
	Plots    int // 0 draws all remaining slices
	Interval time.Duration
	YMin     float64
	YMax     float64
	Width    int
	Height   int
	Out      string

	Verbose     bool
	VeryVerbose bool
}

func DefaultOptions() Options {
	return Options{
		File:     "data.dat",
		Points:   100,
		Interval: 1550 * time.Millisecond,
		YMin:     1e-6,
		YMax:     0.5,
		Width:    800,
		Height:   600,
	}
}

type param struct {
	key  string
	arg  string
	help string
	def  func(Options) string
	set  func(*Options, string) error
}

var params = []param{
	{
		key: "points", arg: "<int>", help: "rows per plotted curve",
		def: func(o Options) string { return strconv.Itoa(o.Points) },
		set: func(o *Options, v string) error { return positiveInt(v, &o.Points) },
	},
	{
		key: "plots", arg: "<int|all>", help: "curves drawn per redraw",
		def: func(o Options) string {
			if o.Plots <= 0 {
				return "all"
			}
			return strconv.Itoa(o.Plots)
		},
		set: func(o *Options, v string) error {
			if v == "all" {
				o.Plots = 0
				return nil
			}
			return positiveInt(v, &o.Plots)
		},
	},
	{
		key: "file", arg: "<path>", help: "input table, - for stdin",
		def: func(o Options) string { return o.File },
		set: func(o *Options, v string) error {
			if v == "" {
				return errors.New("empty path")
			}
			o.File = v
			return nil
		},
	},
	{
		key: "interval", arg: "<duration>", help: "time between redraws",
		def: func(o Options) string { return o.Interval.String() },
		set: func(o *Options, v string) error {
			d, err := time.ParseDuration(v)
			if err != nil {
				return err
			}
			if d <= 0 {
				return errors.New("must be positive")
			}
			o.Interval = d
			return nil
		},
	},
	{
		key: "ymin", arg: "<float>", help: "lower y bound",
		def: func(o Options) string { return strconv.FormatFloat(o.YMin, 'g', -1, 64) },
		set: func(o *Options, v string) error { return positiveFloat(v, &o.YMin) },
	},
	{
		key: "ymax", arg: "<float>", help: "upper y bound",
		def: func(o Options) string { return strconv.FormatFloat(o.YMax, 'g', -1, 64) },
		set: func(o *Options, v string) error { return positiveFloat(v, &o.YMax) },
	},
	{
		key: "width", arg: "<int>", help: "image width in pixels",
		def: func(o Options) string { return strconv.Itoa(o.Width) },
		set: func(o *Options, v string) error { return positiveInt(v, &o.Width) },
	},
	{
		key: "height", arg: "<int>", help: "image height in pixels",
		def: func(o Options) string { return strconv.Itoa(o.Height) },
		set: func(o *Options, v string) error { return positiveInt(v, &o.Height) },
	},
	{
		key: "out", arg: "<dir>", help: "directory for rendered frames",
		def: func(o Options) string {
			if o.Out == "" {
				return "frames/<run-name>"
			}
			return o.Out
		},
		set: func(o *Options, v string) error {
			if v == "" {
				return errors.New("empty path")
			}
			o.Out = v
			return nil
		},
	},
}

// ViewerKeys are the key=value forms the interactive viewer accepts.
var ViewerKeys = []string{"points", "plots", "file", "interval", "ymin", "ymax", "width", "height"}

// FrameKeys are the key=value forms the headless renderer accepts.
var FrameKeys = []string{"points", "plots", "file", "ymin", "ymax", "width", "height", "out"}

func positiveInt(v string, dst *int) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.New("must be positive")
	}
	*dst = n
	return nil
}

func positiveFloat(v string, dst *float64) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	if f <= 0 {
		return errors.New("must be positive")
	}
	*dst = f
	return nil
}

func accepted(keys []string, key string) bool {
	return len(keys) == 0 || slices.Contains(keys, key)
}

// ParseArgs reads key=value arguments over DefaultOptions. keys limits the
// accepted keys; with none given every key is accepted. The first argument
// that is not understood is returned as an *ArgError.
func ParseArgs(args []string, keys ...string) (Options, error) {
	o := DefaultOptions()
	var bounds []string // ymin=/ymax= arguments as given

	for _, arg := range args {
		switch arg {
		case "--help", "-help", "-h":
			return o, ErrHelp
		case "-v":
			o.Verbose = true
			continue
		case "-vv":
			o.VeryVerbose = true
			continue
		}

		key, value, ok := strings.Cut(arg, "=")
		if !ok || !accepted(keys, key) {
			return o, &ArgError{Arg: arg}
		}

		i := slices.IndexFunc(params, func(p param) bool { return p.key == key })
		if i < 0 {
			return o, &ArgError{Arg: arg}
		}
		if err := params[i].set(&o, value); err != nil {
			return o, &ArgError{Arg: arg, Err: err}
		}
		if key == "ymin" || key == "ymax" {
			bounds = append(bounds, arg)
		}
	}

	if o.YMax <= o.YMin {
		return o, &ArgError{
			Arg: strings.Join(bounds, " "),
			Err: errors.New("ymax must be greater than ymin"),
		}
	}

	return o, nil
}

// Usage prints the accepted arguments with their defaults.
func Usage(w io.Writer, prog string, keys ...string) {
	def := DefaultOptions()

	fmt.Fprintf(w, "usage:  %s [key=value ...] [-v|-vv] [--help]\n", prog)
	for _, p := range params {
		if !accepted(keys, p.key) {
			continue
		}
		fmt.Fprintf(w, "\t%10s=%-12s%s\n", p.key, p.arg, p.help)
		fmt.Fprintf(w, "\t%23s[Default:  %s]\n", "", p.def(def))
	}
	fmt.Fprintf(w, "\t%23s%s\n", "-v, -vv", "debug or trace logging")
	fmt.Fprintf(w, "\t%23s%s\n", "--help", "print this text and exit")
}
