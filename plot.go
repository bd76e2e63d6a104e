package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"xsplot/pkg/animate"
	"xsplot/pkg/render"
)

// plotViewer shows the animator's frames in a desktop window. ebiten calls
// Update and Draw from one goroutine, the only one that ticks the animator.
type plotViewer struct {
	anim *animate.Animator
	r    render.Renderer

	img      *ebiten.Image
	reported bool
}

func newPlotViewer(anim *animate.Animator, r render.Renderer) *plotViewer {
	return &plotViewer{anim: anim, r: r}
}

// Run opens the window and blocks until it is closed.
func (v *plotViewer) Run(title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(v.r.Width, v.r.Height)
	ebiten.SetTPS(30)
	return ebiten.RunGame(v)
}

func (v *plotViewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	img, redrawn, err := v.anim.Tick(time.Now())
	if err != nil {
		return err
	}

	if redrawn {
		frame := v.anim.Last()
		log.Debugf("Frame %d: %d curves, cursor at %d", frame.Number, len(frame.Slices), v.anim.Stats().Position)

		if v.img != nil {
			v.img.Deallocate()
		}
		v.img = ebiten.NewImageFromImage(img)
	}

	if v.anim.Done() && !v.reported {
		v.reported = true
		log.Infoln("No more data, redrawing stopped")
	}

	return nil
}

func (v *plotViewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	if v.img != nil {
		screen.DrawImage(v.img, nil)
	}
}

func (v *plotViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.r.Width, v.r.Height
}
