package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"xsplot/pkg/animate"
	cmdUtils "xsplot/pkg/cmd-utils"
	"xsplot/pkg/dataset"
	"xsplot/pkg/haiku"
	"xsplot/pkg/render"
)

const prog = "xsplot"

var once sync.Once

var opts cmdUtils.Options

// anim is read by the signal goroutine; its Stats are safe to snapshot
// while the viewer's update loop ticks it.
var anim atomic.Pointer[animate.Animator]

func init() {
	log.SetLevel(log.InfoLevel)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Fprint(os.Stderr, "\b\b")
		log.Infof("Received signal: %s, stopping...", sig)
		once.Do(epilogue)
		os.Exit(0) // Exit after cleanup
	}()
}

func setLogLevel(o cmdUtils.Options) {
	if o.Verbose {
		log.SetLevel(log.DebugLevel)
		log.Debug("Set log level to debug")
	}

	if o.VeryVerbose {
		log.SetLevel(log.TraceLevel)
		log.Debug("Set log level to trace")
	}
}

func epilogue() {
	if a := anim.Load(); a != nil {
		st := a.Stats()
		log.Infof("Drew %d redraws, cursor at slice %d", st.Redraws, st.Position)
	}

	log.Infoln("Done!")
}

func handle_err(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	var err error

	opts, err = cmdUtils.ParseArgs(os.Args[1:], cmdUtils.ViewerKeys...)
	if errors.Is(err, cmdUtils.ErrHelp) {
		cmdUtils.Usage(os.Stdout, prog, cmdUtils.ViewerKeys...)
		return
	} else if err != nil {
		cmdUtils.ReportArgError(os.Stdout, prog, err, cmdUtils.ViewerKeys...)
		return
	}

	setLogLevel(opts)
	defer once.Do(epilogue)

	ds, err := dataset.Load(opts.File)
	handle_err(err)

	log.Infof("Loaded %s rows (%s) from %s", humanize.Comma(int64(ds.Len())), humanize.Bytes(uint64(ds.Size)), ds.Source)
	log.Debugf("points=%d plots=%d interval=%s", opts.Points, opts.Plots, opts.Interval)

	r := render.Renderer{
		Width:  opts.Width,
		Height: opts.Height,
		YMin:   opts.YMin,
		YMax:   opts.YMax,
		Title:  ds.Source,
	}

	cursor := animate.NewCursor(ds, opts.Points, opts.Plots)
	a := animate.NewAnimator(cursor, r, opts.Interval)
	anim.Store(a)
	viewer := newPlotViewer(a, r)

	log.Infoln("Starting viewer...")
	handle_err(viewer.Run(fmt.Sprintf("%s (%s)", ds.Source, haiku.RunName())))
}
