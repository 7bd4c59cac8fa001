package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/circleprogress/pkg/animation"
	"github.com/go-drift/circleprogress/pkg/progress"
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Play the progress animation and write one PNG per tick",
	Long: `Frames runs the play animation against a stepped clock. Progress goes
from zero to max one unit per tick; with --grow the stroke width follows
it up to the maximum width. Frame 0 is the state right after play starts.`,
	Example: `  circleprogress frames --dir out --size 160
  ffmpeg -framerate 25 -i out/frame_%04d.png ring.gif`,
	Args: cobra.NoArgs,
	PreRun: func(cmd *cobra.Command, args []string) {
		bindFlag(cmd, "frames.dir", "dir")
		bindFlag(cmd, "frames.interval", "interval")
		bindFlag(cmd, "frames.grow", "grow")
		bindFlag(cmd, "render.size", "size")
		bindFlag(cmd, "render.padding", "padding")
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		_, err = runFrames(s)
		return err
	},
}

func init() {
	flags := framesCmd.Flags()
	flags.String("dir", "", "output directory")
	flags.Duration("interval", 0, "time between ticks")
	flags.Bool("grow", false, "grow the stroke width with the progress")
	flags.Int("size", 0, "canvas side in pixels")
	flags.Int("padding", 0, "padding on every side in pixels")

	rootCmd.AddCommand(framesCmd)
}

// stepClock only moves when advanced.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time          { return c.now }
func (c *stepClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// runFrames plays the animation to completion and returns the number of
// frames written.
func runFrames(s *session) (int, error) {
	s.attach()
	v := s.newView()

	interval := s.cfg.Frames.Interval
	if interval <= 0 {
		interval = animation.DefaultPlayInterval
	}
	clk := &stepClock{now: time.Unix(0, 0)}
	sched := animation.NewScheduler(clk)
	player := animation.NewPlayer(sched, v)
	player.Interval = interval

	size := max(s.cfg.Render.Size, 1)
	dir := s.cfg.Frames.Dir
	var (
		written int
		werr    error
	)
	write := func() {
		if werr != nil {
			return
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", written))
		if werr = writePNG(path, s.rasterize(v, size, s.cfg.Render.Padding)); werr == nil {
			written++
		}
	}
	grow := func(p, limit int) {
		if s.cfg.Frames.Grow {
			percentage := float64(p) / float64(limit) * 100
			v.SetCircleWidth(int(progress.MaxCircleWidth * percentage / 100))
		}
	}
	player.OnStep = func(p, limit int) {
		grow(p, limit)
		write()
	}

	player.Play()
	grow(v.Progress(), v.Max())
	write()
	// A view that ignores updates would otherwise stall the run forever.
	for i := 0; player.IsPlaying() && werr == nil && i <= v.Max(); i++ {
		sched.Step()
		clk.advance(interval)
	}
	player.Stop()
	if werr != nil {
		return written, werr
	}
	log.Printf("wrote %d frames to %s", written, dir)
	return written, nil
}
