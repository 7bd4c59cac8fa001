package demo

import (
	"fmt"
	"image"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/circleprogress/pkg/animation"
	"github.com/go-drift/circleprogress/pkg/errors"
	"github.com/go-drift/circleprogress/pkg/resources"
)

type frameMsg time.Time

type imageLoadedMsg struct {
	img image.Image
	err error
}

func frameCmd() tea.Cmd {
	return tea.Tick(animation.DefaultPlayInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// loadImageCmd decodes path off the UI goroutine and crops it to a circle.
func loadImageCmd(path string, size int) tea.Cmd {
	return func() (msg tea.Msg) {
		// Some decoders panic on malformed input.
		defer errors.RecoverWithCallback("demo.loadImage", func(r any) {
			msg = imageLoadedMsg{err: fmt.Errorf("decoding %s: %v", path, r)}
		})
		img, err := resources.DecodeFile(path)
		if err != nil {
			return imageLoadedMsg{err: err}
		}
		return imageLoadedMsg{img: resources.CropCircle(img, size)}
	}
}
