package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/KirkDiggler/bacmon/internal/models"
)

// Display serializes writes to one terminal. Live readings arrive from
// the monitor's goroutine while command output comes from the reader
// loop, so every write goes through the same mutex.
type Display struct {
	mu  sync.Mutex
	out io.Writer
}

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Publish implements the monitor's Sink by rendering each live reading
func (d *Display) Publish(_ context.Context, reading *models.Reading) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := fmt.Fprintf(d.out, "\n%s\n", renderReading(reading))
	return err
}

func (d *Display) write(s string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprintln(d.out, s)
}

func (d *Display) writePrompt() {
	d.mu.Lock()
	defer d.mu.Unlock()

	fmt.Fprint(d.out, "> ")
}
