// Package stats computes per-speaker activity statistics over chat records.
package stats

import (
	"fmt"
	"sort"
	"strings"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

// SpeakerStats holds the activity counts for one distinct speaker.
// MessageCount is always ReactionCount + ChatCount.
type SpeakerStats struct {
	Speaker       string `json:"speaker" yaml:"speaker"`
	MessageCount  int    `json:"message_count" yaml:"message_count"`
	ReactionCount int    `json:"reaction_count" yaml:"reaction_count"`
	ChatCount     int    `json:"chat_count" yaml:"chat_count"`
}

// reactionPrefix marks emoji reaction records the platform writes as
// "Reacted to ... with ...". Reactions still count as messages; the split is
// informational only.
const reactionPrefix = "Reacted"

// IsReaction reports whether a message is an emoji reaction record.
func IsReaction(message string) bool {
	return strings.HasPrefix(message, reactionPrefix)
}

// Aggregate groups records by exact speaker string (case-sensitive) and
// returns one SpeakerStats per distinct speaker, sorted by speaker name
// ascending. The counts are recomputed from scratch on every call.
//
// A speaker appearing once with a role tag and once without groups as one
// speaker only if the name matches exactly; the role is not part of the key.
func Aggregate(records []transcript.Record) []SpeakerStats {
	bySpeaker := make(map[string]*SpeakerStats)
	for _, r := range records {
		s, ok := bySpeaker[r.Speaker]
		if !ok {
			s = &SpeakerStats{Speaker: r.Speaker}
			bySpeaker[r.Speaker] = s
		}
		s.MessageCount++
		if IsReaction(r.Message) {
			s.ReactionCount++
		} else {
			s.ChatCount++
		}
	}

	stats := make([]SpeakerStats, 0, len(bySpeaker))
	for _, s := range bySpeaker {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Speaker < stats[j].Speaker
	})
	return stats
}

// Rank returns the topN most active and topN most silent speakers.
//
// Most active is sorted by message count descending, most silent ascending;
// both break count ties by speaker name ascending, so repeated calls on the
// same record set return identical output. Fewer distinct speakers than topN
// returns all of them; an empty record set returns two empty lists. topN <= 0
// is a caller contract violation.
func Rank(records []transcript.Record, topN int) (mostActive, mostSilent []SpeakerStats, err error) {
	if topN <= 0 {
		return nil, nil, fmt.Errorf("top n must be positive, got %d: %w", topN, cserrors.ErrInvalidArgument)
	}

	stats := Aggregate(records)

	mostActive = make([]SpeakerStats, len(stats))
	copy(mostActive, stats)
	sort.Slice(mostActive, func(i, j int) bool {
		if mostActive[i].MessageCount != mostActive[j].MessageCount {
			return mostActive[i].MessageCount > mostActive[j].MessageCount
		}
		return mostActive[i].Speaker < mostActive[j].Speaker
	})

	mostSilent = make([]SpeakerStats, len(stats))
	copy(mostSilent, stats)
	sort.Slice(mostSilent, func(i, j int) bool {
		if mostSilent[i].MessageCount != mostSilent[j].MessageCount {
			return mostSilent[i].MessageCount < mostSilent[j].MessageCount
		}
		return mostSilent[i].Speaker < mostSilent[j].Speaker
	})

	if len(mostActive) > topN {
		mostActive = mostActive[:topN]
	}
	if len(mostSilent) > topN {
		mostSilent = mostSilent[:topN]
	}
	return mostActive, mostSilent, nil
}
