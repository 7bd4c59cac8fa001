// Package demo is an interactive terminal host for a progress view.
//
// It mirrors a phone demo screen: two seek bars (progress and stroke width),
// a play button that animates the progress from zero to max, and a center
// image that is loaded in the background while a placeholder is shown.
package demo

import (
	"fmt"
	"image"
	"io"
	"log"
	"strings"

	seekbar "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/circleprogress/pkg/animation"
	"github.com/go-drift/circleprogress/pkg/errors"
	"github.com/go-drift/circleprogress/pkg/graphics"
	"github.com/go-drift/circleprogress/pkg/layout"
	"github.com/go-drift/circleprogress/pkg/progress"
	"github.com/go-drift/circleprogress/pkg/resources"
	"github.com/go-drift/circleprogress/pkg/terminal"
)

// Config configures the demo.
type Config struct {
	// Attributes are the initial view attributes.
	Attributes progress.Attributes

	// Registry resolves image handles. A new registry is created when nil.
	Registry *resources.Registry

	// ImagePath is loaded, cropped to a circle and shown in the center.
	// Empty keeps the placeholder.
	ImagePath string

	// ImageSize is the side of the cropped image in pixels.
	ImageSize int

	// Tint is applied when tinting is toggled on.
	Tint graphics.Color

	// Background fills the canvas behind the view. It is ignored when
	// Renderer is set; the renderer's own background is used instead.
	Background graphics.Color

	// Renderer draws frames to text. A true-color stdout renderer is used
	// when nil.
	Renderer *terminal.Renderer

	// Clock drives the animation scheduler. Nil uses the system clock.
	Clock animation.Clock

	// LogFile receives log lines and reported errors while the demo owns
	// the screen. Empty discards them.
	LogFile string
}

// seek bar ranges
const (
	widthSeekMax = progress.MaxCircleWidth
	springFPS    = 25
)

// Model is the Bubble Tea model for the demo.
type Model struct {
	view     *progress.View
	sched    *animation.Scheduler
	player   *animation.Player
	renderer *terminal.Renderer
	frame    *frameCache
	spring   *animation.Spring
	reg      *resources.Registry

	// placeholder is the handle registered for the stand-in image; the
	// loaded image replaces its source. NoImage when the attributes named
	// an image of their own.
	placeholder int

	progressBar seekbar.Model
	widthBar    seekbar.Model

	seek *seekState

	imagePath string
	imageSize int
	tint      graphics.Color
	tinted    bool

	cols, rows int
	status     string
	failed     bool
	quitting   bool
}

// seekState holds the seek bar positions. It is shared by every copy of the
// model and by the player callback.
type seekState struct {
	progress int
	width    int
}

// frameCache keeps the last rendered frame until the view invalidates it.
type frameCache struct {
	dirty  bool
	layout bool
	text   string
}

func (c *frameCache) Invalidate()    { c.dirty = true }
func (c *frameCache) RequestLayout() { c.dirty, c.layout = true, true }

// New creates the demo model.
func New(cfg Config) Model {
	reg := cfg.Registry
	if reg == nil {
		reg = resources.NewRegistry()
	}
	size := cfg.ImageSize
	if size <= 0 {
		size = 100
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = terminal.NewRenderer(cfg.Background, terminal.WithTrueColor())
	}

	cache := &frameCache{dirty: true, layout: true}
	view := progress.New(cfg.Attributes, progress.WithResolver(reg), progress.WithInvalidator(cache))
	placeholder := progress.NoImage
	// Shown until the real image arrives.
	if cfg.Attributes.Image == progress.NoImage {
		placeholder = reg.RegisterImage(resources.Placeholder(size, resources.PlaceholderColor))
		view.SetImageResource(placeholder)
	}

	sched := animation.NewScheduler(cfg.Clock)
	m := Model{
		view:         view,
		sched:        sched,
		player:       animation.NewPlayer(sched, view),
		renderer:     renderer,
		frame:        cache,
		spring:       animation.NewSpring(springFPS, 6.0, 1.0),
		reg:          reg,
		placeholder:  placeholder,
		progressBar:  seekbar.New(seekbar.WithScaledGradient("#FF4081", "#F50057"), seekbar.WithoutPercentage()),
		widthBar:     seekbar.New(seekbar.WithSolidFill("#757575"), seekbar.WithoutPercentage()),
		seek:         &seekState{progress: view.Progress(), width: view.CircleWidth()},
		imagePath:    cfg.ImagePath,
		imageSize:    size,
		tint:         cfg.Tint,
		cols:         48,
		rows:         24,
	}
	if _, ok := view.ImageTint(); ok {
		m.tinted = true
	}
	if m.imagePath != "" {
		m.status = "loading " + m.imagePath
	}
	m.spring.Reset(m.fraction())

	// The player moves both seek bars, like dragging them by hand.
	m.player.OnStep = func(p, limit int) {
		m.setSeekProgress(p)
		percentage := float64(p) / float64(limit) * 100
		m.setSeekWidth(int(widthSeekMax * percentage / 100))
	}
	return m
}

// Widget returns the view being demonstrated.
func (m Model) Widget() *progress.View { return m.view }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(), tea.SetWindowTitle("circleprogress")}
	if m.imagePath != "" {
		cmds = append(cmds, loadImageCmd(m.imagePath, m.imageSize))
	}
	return tea.Batch(cmds...)
}

// setSeekProgress moves the progress bar and forwards the value to the view.
func (m Model) setSeekProgress(v int) {
	m.seek.progress = min(max(v, 0), m.view.Max())
	m.view.SetProgress(m.seek.progress)
}

// setSeekWidth moves the width bar and forwards the value to the view,
// which clamps it to its own range.
func (m Model) setSeekWidth(v int) {
	m.seek.width = min(max(v, 0), widthSeekMax)
	m.view.SetCircleWidth(m.seek.width)
}

func (m Model) fraction() float64 {
	return float64(m.seek.progress) / float64(m.view.Max())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			m.player.Stop()
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case " ", "enter":
			m.player.Play()
			m.seek.progress = m.view.Progress()
		case "left", "h":
			m.setSeekProgress(m.seek.progress - 1)
		case "right", "l":
			m.setSeekProgress(m.seek.progress + 1)
		case "down", "j":
			m.setSeekWidth(m.seek.width - 1)
		case "up", "k":
			m.setSeekWidth(m.seek.width + 1)
		case "p":
			if m.view.ProgressHidden() {
				m.view.ShowProgress()
			} else {
				m.view.HideProgress()
			}
		case "i":
			if m.view.ImageHidden() {
				m.view.ShowImage()
			} else {
				m.view.HideImage()
			}
		case "t":
			m.tinted = !m.tinted
			if m.tinted {
				m.view.SetImageTint(m.tint)
			} else {
				m.view.ClearImageTint()
			}
		}
		return m, nil

	case frameMsg:
		m.sched.Step()
		m.spring.Step(m.fraction())
		return m, frameCmd()

	case imageLoadedMsg:
		if msg.err != nil {
			m.status = "image failed: " + msg.err.Error()
			m.failed = true
			errors.Report(&errors.Error{Op: "demo.loadImage", Kind: errors.KindResource, Err: msg.err})
			return m, nil
		}
		log.Printf("demo: loaded %s", m.imagePath)
		m.status = ""
		m.showImage(msg.img)
		return m, nil

	case tea.WindowSizeMsg:
		// Keep room for the bars, status and help lines.
		m.cols = max(msg.Width-4, 8)
		m.rows = max(msg.Height-9, 4)
		m.frame.RequestLayout()
		bar := max(m.cols-20, 10)
		m.progressBar.Width = bar
		m.widthBar.Width = bar
		return m, nil
	}
	return m, nil
}

// showImage puts img in the center. When the placeholder is still
// registered its handle is pointed at img, so the view keeps drawing from
// the registry.
func (m Model) showImage(img image.Image) {
	if m.placeholder == progress.NoImage || !m.reg.Valid(m.placeholder) {
		m.view.SetImage(img)
		return
	}
	loaded := func() (image.Image, error) { return img, nil }
	if err := m.reg.Replace(m.placeholder, loaded); err != nil {
		errors.Report(&errors.Error{Op: "demo.showImage", Kind: errors.KindResource, Err: err})
		m.view.SetImage(img)
		return
	}
	m.view.SetImageResource(m.placeholder)
}

// canvas renders the view into text, reusing the last frame when nothing
// changed.
func (m Model) canvas() string {
	if !m.frame.dirty {
		return m.frame.text
	}
	side := min(m.cols, m.rows*2)
	if m.frame.layout {
		m.view.Measure(layout.ExactlySpec(side), layout.ExactlySpec(side), layout.EdgeInsetsAll(1))
	}
	c := graphics.NewRasterCanvas(side, side)
	c.Clear(m.renderer.Background())
	m.view.Paint(c)
	m.frame.text = m.renderer.Render(c.Image())
	m.frame.dirty, m.frame.layout = false, false
	return m.frame.text
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  " + headerStyle.Render("circleprogress") + "\n\n")
	for _, line := range strings.Split(m.canvas(), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	progressValue := valueStyle.Render(fmt.Sprintf("%d/%d", m.view.Progress(), m.view.Max()))
	b.WriteString("  " + labelStyle.Render("progress") + m.progressBar.ViewAs(m.spring.Value()) + " " + progressValue + "\n")
	widthValue := valueStyle.Render(fmt.Sprintf("%dpx", m.view.CircleWidth()))
	b.WriteString("  " + labelStyle.Render("width") + m.widthBar.ViewAs(float64(m.seek.width)/widthSeekMax) + " " + widthValue + "\n\n")

	b.WriteString("  " + statusStyle.Render(m.statusLine()) + "\n")
	if m.status != "" {
		style := statusStyle
		if m.failed {
			style = errorStyle
		}
		b.WriteString("  " + style.Render(m.status) + "\n")
	}
	b.WriteString("  " + helpStyle.Render(helpText()) + "\n")
	return b.String()
}

func (m Model) statusLine() string {
	state := "■ idle"
	if m.player.IsPlaying() {
		state = "▶ playing"
	}
	var flags []string
	if m.view.ProgressHidden() {
		flags = append(flags, "progress hidden")
	}
	if m.view.ImageHidden() {
		flags = append(flags, "image hidden")
	}
	if m.tinted {
		flags = append(flags, "tinted")
	}
	if len(flags) == 0 {
		return state
	}
	return state + "  " + strings.Join(flags, "  ")
}

// Run starts the demo in the alternate screen and blocks until it exits.
// Logging is redirected away from the terminal for the duration.
func Run(cfg Config) error {
	restore, err := quietLogs(cfg.LogFile)
	if err != nil {
		return err
	}
	defer restore()

	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// quietLogs points the standard logger and the error handler at path, or
// discards both when path is empty. restore puts the previous ones back.
func quietLogs(path string) (restore func(), err error) {
	prevOut, prevFlags, prevPrefix := log.Writer(), log.Flags(), log.Prefix()

	var (
		h    errors.ErrorHandler = errors.DiscardHandler{}
		file io.Closer
	)
	if path != "" {
		f, err := tea.LogToFile(path, "circleprogress")
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		h, file = &errors.LogHandler{Out: f}, f
	} else {
		log.SetOutput(io.Discard)
	}
	prevHandler := errors.SetHandler(h)

	return func() {
		errors.SetHandler(prevHandler)
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		log.SetPrefix(prevPrefix)
		if file != nil {
			file.Close()
		}
	}, nil
}
