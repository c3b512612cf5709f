package pulsebiten

import (
	"fmt"

	"github.com/frameloop/pulse"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// timingsOverlay prints the frame timings. The text is cached and only
// rendered again every 30 frames.
type timingsOverlay struct {
	frameCounter int
	image        *ebiten.Image
}

func (o *timingsOverlay) Draw(screen *ebiten.Image, timings *pulse.TimingStats) {
	o.frameCounter += 1
	if o.frameCounter%30 != 0 && o.image != nil && o.image.Bounds() == screen.Bounds() {
		screen.DrawImage(o.image, nil)
		return
	}

	if o.image == nil || o.image.Bounds() != screen.Bounds() {
		b := screen.Bounds()
		o.image = ebiten.NewImage(b.Dx(), b.Dy())
	}

	o.image.Clear()

	for row, line := range timingLines(timings) {
		ebitenutil.DebugPrintAt(o.image, line, 16, 16+16*row)
	}

	screen.DrawImage(o.image, nil)
}

func timingLines(timings *pulse.TimingStats) []string {
	var lines []string

	var maxNameLength int
	for _, phase := range pulse.Phases {
		maxNameLength = max(maxNameLength, len(phase.String()))
	}

	line := func(name string, t pulse.Timings) string {
		return fmt.Sprintf("%-[1]*s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
			maxNameLength,
			name,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		)
	}

	for _, phase := range pulse.Phases {
		lines = append(lines, line(phase.String(), timings.ByPhase[phase]))
	}

	lines = append(lines, line("Frame", timings.Frame))

	return lines
}
