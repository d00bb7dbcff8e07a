package transcript

import (
	"regexp"
	"strings"
)

// Transcript line classification regular expressions
var (
	// Matches a message header line:
	//   00:24:39 [Instructor] Alexander Graham Bell: sore Bu
	//   01:46:25 Issac Newton: household_new[(household_new['year'] == 2018)]
	// The timestamp token is free-form: digits with any mix of :,./- inside.
	// The role tag is optional; the speaker name runs to the first colon.
	headerRegex = regexp.MustCompile(`^(\d[\d:.,/-]*)\s+(?:\[([^\]]+)\]\s*)?([^:]+?)\s*:\s?(.*)$`)

	// Matches a trailing parenthetical device suffix on a speaker name,
	// e.g. "Jane Doe (iPhone)". It carries no analytic value.
	deviceSuffixRegex = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
)

// Classify decides whether one physical line starts a new message or
// continues the previous one.
//
// A line starts a new message when it has a recognizable leading timestamp
// token, an optional "[Role]" tag, and a speaker name terminated by a colon.
// Everything else is a continuation, including empty lines (which classify as
// continuations with empty text) and header-shaped lines whose speaker would
// be empty after trimming. Classification never fails: there is no malformed
// line, only a line that happens not to be a header.
func Classify(line string) Line {
	if strings.TrimSpace(line) == "" {
		return Line{Kind: LineContinuation}
	}

	matches := headerRegex.FindStringSubmatch(line)
	if matches == nil {
		return Line{Kind: LineContinuation, Text: line}
	}

	speaker := strings.TrimSpace(deviceSuffixRegex.ReplaceAllString(matches[3], ""))
	if speaker == "" {
		// A colon with nothing usable before it is not a header.
		return Line{Kind: LineContinuation, Text: line}
	}

	return Line{
		Kind:      LineNewMessage,
		Timestamp: matches[1],
		Role:      strings.TrimSpace(matches[2]),
		Speaker:   speaker,
		Message:   matches[4],
	}
}
