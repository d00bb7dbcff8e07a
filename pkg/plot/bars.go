// Package plot renders speaker statistics as bar charts, either as PNG
// files or as unicode bars for terminal output.
package plot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/stats"
)

const (
	chartWidth  = 1024
	chartHeight = 512
)

// RenderPNG draws a bar chart of message counts per speaker and writes it
// as PNG.
func RenderPNG(w io.Writer, title string, speakerStats []stats.SpeakerStats) error {
	if len(speakerStats) == 0 {
		return fmt.Errorf("%w: no speakers to plot", cserrors.ErrInvalidArgument)
	}

	bars := make([]chart.Value, len(speakerStats))
	for i, s := range speakerStats {
		bars[i] = chart.Value{
			Value: float64(s.MessageCount),
			Label: s.Speaker,
		}
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 48,
		Bars:     bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering chart %q: %w", title, err)
	}
	return nil
}

// SavePNG renders a bar chart into dir under the given file name,
// creating the directory if needed. It returns the written path.
func SavePNG(dir, name, title string, speakerStats []stats.SpeakerStats) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating plot dir: %w", err)
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating plot file: %w", err)
	}
	defer f.Close()

	if err := RenderPNG(f, title, speakerStats); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing plot file: %w", err)
	}
	return path, nil
}
