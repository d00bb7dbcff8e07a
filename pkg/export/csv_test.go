package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/stats"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

func TestRecordsCSV_RoundTrip(t *testing.T) {
	records := []transcript.Record{
		{Timestamp: "00:24:39", Role: "Instructor", Speaker: "Alexander Graham Bell", Message: "sore Bu", SourceFile: "chat.txt"},
		{Timestamp: "01:46:25", Speaker: "Issac Newton", Message: "first line\nsecond line", SourceFile: "chat.txt"},
		{Timestamp: "01:46:47", Speaker: "J. Robert Oppenheimer", Message: `Reacted to "x" with 👏`, SourceFile: "day2.txt"},
	}

	out, err := RecordsCSV(records)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "timestamp,role,speaker,message,source_file\n"))

	back, err := ReadCSV(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, records, back)
}

func TestRecordsCSV_EmptyHasOnlyHeader(t *testing.T) {
	out, err := RecordsCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "timestamp,role,speaker,message,source_file\n", out)
}

func TestStatsCSV(t *testing.T) {
	out, err := StatsCSV([]stats.SpeakerStats{
		{Speaker: "Ann", MessageCount: 3, ChatCount: 2, ReactionCount: 1},
		{Speaker: "Bob", MessageCount: 1, ChatCount: 1},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "speaker,message_count,chat_count,reaction_count", lines[0])
	assert.Equal(t, "Ann,3,2,1", lines[1])
	assert.Equal(t, "Bob,1,1,0", lines[2])
}

func TestReadCSV_RejectsWrongHeader(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("when,who,what,where,why\n"))
	require.Error(t, err)
	assert.True(t, cserrors.IsUnreadableInput(err))
}

func TestReadCSV_RejectsEmptyInput(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, cserrors.IsUnreadableInput(err))
}

func TestReadCSV_RejectsShortRow(t *testing.T) {
	in := "timestamp,role,speaker,message,source_file\n00:00:00,,Ann\n"
	_, err := ReadCSV(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, cserrors.IsUnreadableInput(err))
}

func TestWriteClipboard_RejectsEmptyText(t *testing.T) {
	err := WriteClipboard("")
	require.Error(t, err)
	assert.True(t, cserrors.IsInvalidArgument(err))
}
