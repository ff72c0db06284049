package progress

import (
	"fmt"
	"io"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
)

// Bar wraps a byte-count progress bar for copy and archive operations. It
// implements io.Writer so it can be teed into a data stream.
type Bar struct {
	bar          *progressbar.ProgressBar
	showProgress bool
}

// Write implements io.Writer; the data itself is discarded, only its length
// advances the bar.
func (b *Bar) Write(p []byte) (int, error) {
	return b.bar.Write(p)
}

// Describe sets the description of the bar
func (b *Bar) Describe(description string) {
	b.bar.Describe(description)
}

// Finish completes the bar and prints a newline if progress is shown
func (b *Bar) Finish() error {
	err := b.bar.Finish()
	if b.showProgress {
		fmt.Println()
	}
	return err
}

// NewBar creates a byte progress bar. Pass totalBytes < 0 for a spinner when
// the total is unknown. showProgress is typically util.IsATTY() && !quiet.
func NewBar(totalBytes int64, description string, showProgress bool) *Bar {
	var writer io.Writer = ansi.NewAnsiStdout()
	if !showProgress {
		writer = io.Discard
	}

	bar := progressbar.NewOptions64(totalBytes,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	return &Bar{bar: bar, showProgress: showProgress}
}
