package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/stats"
)

var sampleStats = []stats.SpeakerStats{
	{Speaker: "Ann", MessageCount: 4, ChatCount: 3, ReactionCount: 1},
	{Speaker: "Bob", MessageCount: 1, ChatCount: 1},
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(&buf, "Most Active", sampleStats)
	require.NoError(t, err)

	// PNG magic bytes.
	require.Greater(t, buf.Len(), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestRenderPNG_NoSpeakers(t *testing.T) {
	var buf bytes.Buffer
	err := RenderPNG(&buf, "Most Active", nil)
	require.Error(t, err)
	assert.True(t, cserrors.IsInvalidArgument(err))
}

func TestSavePNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "plots")

	path, err := SavePNG(dir, "most_active.png", "Most Active", sampleStats)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "most_active.png"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderTerminal(t *testing.T) {
	var buf bytes.Buffer
	err := RenderTerminal(&buf, sampleStats, 80)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Ann")
	assert.Contains(t, lines[0], "█")
	assert.True(t, strings.HasSuffix(lines[0], "4"))
	assert.True(t, strings.HasSuffix(lines[1], "1"))

	// The largest count owns the longest bar.
	assert.Greater(t, strings.Count(lines[0], "█"), strings.Count(lines[1], "█"))
}

func TestRenderTerminal_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTerminal(&buf, nil, 80))
	assert.Zero(t, buf.Len())
}
