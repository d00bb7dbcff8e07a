// Package transcript provides parsing for informal chat transcript exports.
//
// The input format is the loosely structured text a meeting platform writes
// when a host saves the in-meeting chat: a timestamp token, an optional
// bracketed role tag, a speaker name terminated by a colon, then the message.
// Messages may continue over several physical lines. None of it is validated
// as real time data; timestamps travel through as opaque strings.
package transcript

// LineKind identifies how a physical line was classified.
type LineKind int

const (
	// LineContinuation is a line with no recognizable message header. Its
	// text belongs to the previous message, if any.
	LineContinuation LineKind = iota

	// LineNewMessage is a line that starts a new chat message.
	LineNewMessage
)

// Line is the classified form of one physical transcript line.
// For LineNewMessage the header fields are set; for LineContinuation only
// Text is meaningful.
type Line struct {
	Kind LineKind

	// Header fields, set when Kind == LineNewMessage.
	Timestamp string
	Role      string
	Speaker   string
	Message   string

	// Text is the raw line content, set when Kind == LineContinuation.
	// Empty for whitespace-only lines.
	Text string
}

// Record is one complete chat message assembled from a transcript.
type Record struct {
	// Timestamp is the leading token of the header line, preserved verbatim.
	// It is display metadata, never parsed into a time value.
	Timestamp string `json:"timestamp"`

	// Role is the bracketed tag preceding the speaker, e.g. "Instructor" or
	// "TA". Empty when the header carried no tag.
	Role string `json:"role,omitempty"`

	// Speaker is the trimmed display name, always non-empty.
	Speaker string `json:"speaker"`

	// Message is the message text. Continuation lines are joined with "\n".
	Message string `json:"message"`

	// SourceFile is the base name of the file the record came from.
	SourceFile string `json:"source_file"`
}

// FileRecords pairs a transcript path with the records assembled from it.
type FileRecords struct {
	Path    string   `json:"path"`
	Records []Record `json:"records"`
}

// Merge concatenates per-file record sequences in the order supplied.
// Relative record order within each file is preserved, and identical speaker
// names across files are deliberately not distinguished: the result is a
// course-wide view where "Ann" on day 1 and "Ann" on day 3 are one speaker.
func Merge(files ...[]Record) []Record {
	total := 0
	for _, recs := range files {
		total += len(recs)
	}
	merged := make([]Record, 0, total)
	for _, recs := range files {
		merged = append(merged, recs...)
	}
	return merged
}
