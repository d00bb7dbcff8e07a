package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

func rec(speaker, message string) transcript.Record {
	return transcript.Record{Timestamp: "00:00:00", Speaker: speaker, Message: message, SourceFile: "chat.txt"}
}

func TestAggregate_CountsAndReactionSplit(t *testing.T) {
	records := []transcript.Record{
		rec("Ann", "hello"),
		rec("Ann", `Reacted to "hello" with 👍`),
		rec("Bob", "hi"),
		rec("Ann", "more"),
	}

	stats := Aggregate(records)
	require.Len(t, stats, 2)

	// Sorted by speaker name ascending.
	assert.Equal(t, "Ann", stats[0].Speaker)
	assert.Equal(t, 3, stats[0].MessageCount)
	assert.Equal(t, 1, stats[0].ReactionCount)
	assert.Equal(t, 2, stats[0].ChatCount)

	assert.Equal(t, "Bob", stats[1].Speaker)
	assert.Equal(t, 1, stats[1].MessageCount)
	assert.Equal(t, 0, stats[1].ReactionCount)
}

func TestAggregate_SpeakerMatchIsCaseSensitive(t *testing.T) {
	records := []transcript.Record{rec("ann", "a"), rec("Ann", "b")}
	stats := Aggregate(records)
	assert.Len(t, stats, 2)
}

func TestAggregate_TotalEqualsRecordCount(t *testing.T) {
	records := []transcript.Record{
		rec("Ann", "a"), rec("Bob", "b"), rec("Ann", "c"),
		rec("Cyn", "Reacted to \"a\" with ❤️"), rec("Bob", "d"),
	}

	total := 0
	for _, s := range Aggregate(records) {
		total += s.MessageCount
		assert.Equal(t, s.MessageCount, s.ChatCount+s.ReactionCount)
	}
	assert.Equal(t, len(records), total)
}

func TestRank_WorkshopScenario(t *testing.T) {
	records := []transcript.Record{
		{Timestamp: "00:24:39", Role: "Instructor", Speaker: "Alexander Graham Bell", Message: "sore Bu"},
		{Timestamp: "01:46:25", Speaker: "Issac Newton", Message: "household_new[(household_new['year'] == 2018)]"},
		{Timestamp: "01:46:47", Role: "TA", Speaker: "J. Robert Oppenheimer", Message: `Reacted to "household_new[(household..." with 👏`},
		{Timestamp: "01:48:40", Speaker: "Issac Newton", Message: "data awalnya berubah"},
	}

	mostActive, _, err := Rank(records, 1)
	require.NoError(t, err)
	require.Len(t, mostActive, 1)
	assert.Equal(t, "Issac Newton", mostActive[0].Speaker)
	assert.Equal(t, 2, mostActive[0].MessageCount)
}

func TestRank_OrderingAndTieBreak(t *testing.T) {
	records := []transcript.Record{
		rec("Cyn", "1"), rec("Cyn", "2"), rec("Cyn", "3"),
		rec("Bob", "1"), rec("Bob", "2"),
		rec("Ann", "1"), rec("Ann", "2"),
		rec("Dee", "1"),
	}

	mostActive, mostSilent, err := Rank(records, 10)
	require.NoError(t, err)

	activeNames := speakerNames(mostActive)
	silentNames := speakerNames(mostSilent)

	// Ties (Ann and Bob, both 2) break alphabetically in both directions.
	assert.Equal(t, []string{"Cyn", "Ann", "Bob", "Dee"}, activeNames)
	assert.Equal(t, []string{"Dee", "Ann", "Bob", "Cyn"}, silentNames)
}

func TestRank_TruncatesToTopN(t *testing.T) {
	records := []transcript.Record{
		rec("Ann", "1"), rec("Bob", "1"), rec("Cyn", "1"), rec("Dee", "1"),
	}

	mostActive, mostSilent, err := Rank(records, 2)
	require.NoError(t, err)
	assert.Len(t, mostActive, 2)
	assert.Len(t, mostSilent, 2)
}

func TestRank_FewerSpeakersThanTopN(t *testing.T) {
	records := []transcript.Record{rec("Ann", "1"), rec("Bob", "1")}

	mostActive, mostSilent, err := Rank(records, 10)
	require.NoError(t, err)
	assert.Len(t, mostActive, 2)
	assert.Len(t, mostSilent, 2)
}

func TestRank_EmptyRecords(t *testing.T) {
	mostActive, mostSilent, err := Rank(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, mostActive)
	assert.Empty(t, mostSilent)
}

func TestRank_InvalidTopN(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, _, err := Rank([]transcript.Record{rec("Ann", "a")}, n)
		require.Error(t, err, "top n %d", n)
		assert.True(t, cserrors.IsInvalidArgument(err))
	}
}

func TestRank_Idempotent(t *testing.T) {
	records := []transcript.Record{
		rec("Ann", "1"), rec("Bob", "1"), rec("Bob", "2"), rec("Cyn", "1"),
	}

	active1, silent1, err := Rank(records, 3)
	require.NoError(t, err)
	active2, silent2, err := Rank(records, 3)
	require.NoError(t, err)

	assert.Equal(t, active1, active2)
	assert.Equal(t, silent1, silent2)
}

func TestIsReaction(t *testing.T) {
	assert.True(t, IsReaction(`Reacted to "x" with 👍`))
	assert.False(t, IsReaction("hello"))
	assert.False(t, IsReaction("I Reacted badly to that"))
}

func speakerNames(stats []SpeakerStats) []string {
	names := make([]string, len(stats))
	for i, s := range stats {
		names[i] = s.Speaker
	}
	return names
}
