// Package panel pushes finished bitmaps to an e-paper display or a stand-in.
package panel

import (
	"fmt"
	"image"
)

// Panel is a write-only display.
type Panel interface {
	Init() error
	Display(img image.Image) error
	Sleep() error
}

// Show runs a full refresh cycle: init, display, sleep. The panel is put to
// sleep even when displaying fails.
func Show(p Panel, img image.Image) error {
	if err := p.Init(); err != nil {
		return fmt.Errorf("initialising panel: %w", err)
	}
	if err := p.Display(img); err != nil {
		if sleepErr := p.Sleep(); sleepErr != nil {
			return fmt.Errorf("displaying image: %w (sleep: %v)", err, sleepErr)
		}
		return fmt.Errorf("displaying image: %w", err)
	}
	if err := p.Sleep(); err != nil {
		return fmt.Errorf("putting panel to sleep: %w", err)
	}
	return nil
}
