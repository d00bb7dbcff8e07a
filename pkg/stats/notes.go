package stats

import (
	"fmt"
	"sort"

	"github.com/finesaaa/chatstats/pkg/transcript"
)

// SpeakerNotes is a per-speaker activity summary across sessions, one line
// per day label.
type SpeakerNotes struct {
	Speaker string   `json:"speaker" yaml:"speaker"`
	Lines   []string `json:"lines" yaml:"lines"`
}

// Notes builds an activity note for every speaker seen across the given
// sessions. perDay holds one record set per session, aligned with dayLabels.
//
// A speaker's chattiness each day is judged against the mean per-speaker-day
// chat count, and their responsiveness against the mean reaction count. The
// means are truncated to integers, so a course where everyone averages under
// one chat a day treats a single message as very active.
func Notes(perDay [][]transcript.Record, dayLabels []string) (notes []SpeakerNotes, meanChat, meanReaction int) {
	dayStats := make([]map[string]SpeakerStats, len(perDay))
	speakerSet := make(map[string]bool)

	var chatSum, reactionSum, entries int
	for i, records := range perDay {
		dayStats[i] = make(map[string]SpeakerStats)
		for _, s := range Aggregate(records) {
			dayStats[i][s.Speaker] = s
			speakerSet[s.Speaker] = true
			chatSum += s.ChatCount
			reactionSum += s.ReactionCount
			entries++
		}
	}

	if entries > 0 {
		meanChat = chatSum / entries
		meanReaction = reactionSum / entries
	}

	speakers := make([]string, 0, len(speakerSet))
	for s := range speakerSet {
		speakers = append(speakers, s)
	}
	sort.Strings(speakers)

	notes = make([]SpeakerNotes, 0, len(speakers))
	for _, speaker := range speakers {
		note := SpeakerNotes{Speaker: speaker, Lines: make([]string, 0, len(perDay))}
		for i := range perDay {
			day := dayLabel(dayLabels, i)
			s, present := dayStats[i][speaker]
			if !present {
				note.Lines = append(note.Lines, fmt.Sprintf("%s: no chat or reactions", day))
				continue
			}

			var line string
			switch {
			case s.MessageCount >= meanChat:
				line = fmt.Sprintf("%s: very active in chat (%d)", day, s.MessageCount)
			case s.MessageCount >= 1:
				line = fmt.Sprintf("%s: less active in chat (%d)", day, s.MessageCount)
			default:
				line = fmt.Sprintf("%s: passive (%d)", day, s.MessageCount)
			}

			switch {
			case s.ReactionCount >= meanReaction:
				line += fmt.Sprintf(", active with reactions (%d)", s.ReactionCount)
			case s.ReactionCount >= 1:
				line += fmt.Sprintf(", less active with reactions (%d)", s.ReactionCount)
			default:
				line += ", no reactions"
			}

			note.Lines = append(note.Lines, line)
		}
		notes = append(notes, note)
	}

	return notes, meanChat, meanReaction
}

func dayLabel(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return fmt.Sprintf("Day %d", i+1)
}
