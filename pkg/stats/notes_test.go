package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finesaaa/chatstats/pkg/transcript"
)

func TestNotes_TwoDayCourse(t *testing.T) {
	reaction := `Reacted to "x" with 👍`
	day1 := []transcript.Record{
		rec("Ann", "a"), rec("Ann", "b"), rec("Ann", "c"),
		rec("Ann", reaction), rec("Ann", reaction), rec("Ann", reaction),
		rec("Bob", "hi"),
	}
	day2 := []transcript.Record{
		rec("Ann", "d"), rec("Ann", "e"),
	}

	notes, meanChat, meanReaction := Notes([][]transcript.Record{day1, day2}, []string{"Day 1", "Day 2"})

	// 6 chats over 3 speaker-day entries, 3 reactions over the same.
	assert.Equal(t, 2, meanChat)
	assert.Equal(t, 1, meanReaction)

	require.Len(t, notes, 2)
	assert.Equal(t, "Ann", notes[0].Speaker)
	assert.Equal(t, []string{
		"Day 1: very active in chat (6), active with reactions (3)",
		"Day 2: very active in chat (2), no reactions",
	}, notes[0].Lines)

	assert.Equal(t, "Bob", notes[1].Speaker)
	assert.Equal(t, []string{
		"Day 1: less active in chat (1), no reactions",
		"Day 2: no chat or reactions",
	}, notes[1].Lines)
}

func TestNotes_MissingLabelsFallBackToDayNumber(t *testing.T) {
	day1 := []transcript.Record{rec("Ann", "a")}
	day2 := []transcript.Record{rec("Ann", "b")}

	notes, _, _ := Notes([][]transcript.Record{day1, day2}, []string{"2024-01-15"})

	require.Len(t, notes, 1)
	require.Len(t, notes[0].Lines, 2)
	assert.Contains(t, notes[0].Lines[0], "2024-01-15:")
	assert.Contains(t, notes[0].Lines[1], "Day 2:")
}

func TestNotes_Empty(t *testing.T) {
	notes, meanChat, meanReaction := Notes(nil, nil)
	assert.Empty(t, notes)
	assert.Zero(t, meanChat)
	assert.Zero(t, meanReaction)
}
