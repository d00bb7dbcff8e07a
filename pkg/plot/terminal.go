package plot

import (
	"fmt"
	"io"
	"strings"

	"github.com/finesaaa/chatstats/pkg/stats"
)

const minBarWidth = 20

// RenderTerminal prints a horizontal bar per speaker, scaled so the
// largest count fills the available width.
func RenderTerminal(w io.Writer, speakerStats []stats.SpeakerStats, width int) error {
	if len(speakerStats) == 0 {
		return nil
	}

	maxCount := 0
	maxName := 0
	for _, s := range speakerStats {
		if s.MessageCount > maxCount {
			maxCount = s.MessageCount
		}
		if len(s.Speaker) > maxName {
			maxName = len(s.Speaker)
		}
	}

	// Name column, space, bar, space, count.
	barWidth := width - maxName - len(fmt.Sprint(maxCount)) - 2
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	for _, s := range speakerStats {
		n := 0
		if maxCount > 0 {
			n = s.MessageCount * barWidth / maxCount
		}
		if n == 0 && s.MessageCount > 0 {
			n = 1
		}
		bar := strings.Repeat("█", n)
		if _, err := fmt.Fprintf(w, "%-*s %s %d\n", maxName, s.Speaker, bar, s.MessageCount); err != nil {
			return err
		}
	}
	return nil
}
