package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"xsplot/pkg/animate"
	cmdUtils "xsplot/pkg/cmd-utils"
	"xsplot/pkg/dataset"
	"xsplot/pkg/haiku"
	"xsplot/pkg/render"
)

const prog = "xsframes"

var startTime time.Time

// renderFrames writes every non-empty frame to outDir. A frame that fails
// to save is reported and skipped. It returns the written and failed counts
// and stops between frames when ctx is cancelled.
func renderFrames(ctx context.Context, cursor *animate.Cursor, r render.Renderer, outDir string, showProgress bool) (uint64, uint64, error) {
	frameCount := uint64(0)
	failed := uint64(0)

	for {
		select {
		case <-ctx.Done():
			return frameCount, failed, ctx.Err()
		default:
		}

		frame, more := cursor.Advance()
		if len(frame.Slices) > 0 {
			path := filepath.Join(outDir, fmt.Sprintf("frame-%04d.png", frame.Number))
			if err := r.Save(frame.Slices, path); err != nil {
				cmdUtils.LogError(fmt.Sprintf("frame %d skipped: ", frame.Number), err)
				failed++
			} else {
				log.Debugf("Wrote %s (%d curves)", path, len(frame.Slices))

				frameCount++
				if showProgress {
					cmdUtils.PrintProgress(os.Stderr, startTime, frameCount, 1)
				}
			}
		}

		if !more {
			return frameCount, failed, nil
		}
	}
}

func main() {
	opts, err := cmdUtils.ParseArgs(os.Args[1:], cmdUtils.FrameKeys...)
	if errors.Is(err, cmdUtils.ErrHelp) {
		cmdUtils.Usage(os.Stdout, prog, cmdUtils.FrameKeys...)
		return
	} else if err != nil {
		cmdUtils.ReportArgError(os.Stdout, prog, err, cmdUtils.FrameKeys...)
		return
	}

	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	if opts.VeryVerbose {
		log.SetLevel(log.TraceLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	ds, err := dataset.Load(opts.File)
	if err != nil {
		cmdUtils.LogFatalError("failed to load dataset: ", err)
	}
	log.Infof("Loaded %s rows (%s) from %s", humanize.Comma(int64(ds.Len())), humanize.Bytes(uint64(ds.Size)), ds.Source)

	outDir := opts.Out
	if outDir == "" {
		outDir = filepath.Join("frames", haiku.RunName())
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		cmdUtils.LogFatalError("failed to create output directory: ", err)
	}

	r := render.Renderer{
		Width:  opts.Width,
		Height: opts.Height,
		YMin:   opts.YMin,
		YMax:   opts.YMax,
		Title:  ds.Source,
	}
	cursor := animate.NewCursor(ds, opts.Points, opts.Plots)

	// Progress lines would interleave with debug output.
	showProgress := !opts.Verbose && !opts.VeryVerbose

	startTime = time.Now()
	frameCount, failed, err := renderFrames(ctx, cursor, r, outDir, showProgress)
	if errors.Is(err, context.Canceled) {
		log.Infoln("Interrupted, stopping...")
	}
	if failed > 0 {
		log.Warnf("%d frames could not be written", failed)
	}

	log.Infof("Wrote %d frames to %s in %s, cursor at slice %d", frameCount, outDir, time.Since(startTime).Round(time.Millisecond), cursor.Position())
}
