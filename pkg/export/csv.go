// Package export renders parsed chat records and speaker statistics
// into CSV, for download or for handing to spreadsheet tools.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
	"github.com/finesaaa/chatstats/pkg/stats"
	"github.com/finesaaa/chatstats/pkg/transcript"
)

// Header is the column order used for record exports.
var Header = []string{"timestamp", "role", "speaker", "message", "source_file"}

// StatsHeader is the column order used for speaker statistics exports.
var StatsHeader = []string{"speaker", "message_count", "chat_count", "reaction_count"}

// WriteCSV writes records as CSV with a header row. Messages keep their
// embedded newlines; encoding/csv quotes them.
func WriteCSV(w io.Writer, records []transcript.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, r := range records {
		row := []string{r.Timestamp, r.Role, r.Speaker, r.Message, r.SourceFile}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStatsCSV writes speaker statistics as CSV with a header row.
func WriteStatsCSV(w io.Writer, speakerStats []stats.SpeakerStats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(StatsHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range speakerStats {
		row := []string{
			s.Speaker,
			strconv.Itoa(s.MessageCount),
			strconv.Itoa(s.ChatCount),
			strconv.Itoa(s.ReactionCount),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// RecordsCSV renders records to a CSV string.
func RecordsCSV(records []transcript.Record) (string, error) {
	var b strings.Builder
	if err := WriteCSV(&b, records); err != nil {
		return "", err
	}
	return b.String(), nil
}

// StatsCSV renders speaker statistics to a CSV string.
func StatsCSV(speakerStats []stats.SpeakerStats) (string, error) {
	var b strings.Builder
	if err := WriteStatsCSV(&b, speakerStats); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ReadCSV parses a record export produced by WriteCSV back into records.
// The header row is required and must match Header.
func ReadCSV(r io.Reader) ([]transcript.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing csv header", cserrors.ErrUnreadableInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv header: %v", cserrors.ErrUnreadableInput, err)
	}
	for i, col := range Header {
		if header[i] != col {
			return nil, fmt.Errorf("%w: unexpected csv header %q", cserrors.ErrUnreadableInput, header)
		}
	}

	var records []transcript.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading csv row: %v", cserrors.ErrUnreadableInput, err)
		}
		records = append(records, transcript.Record{
			Timestamp:  row[0],
			Role:       row[1],
			Speaker:    row[2],
			Message:    row[3],
			SourceFile: row[4],
		})
	}
}
