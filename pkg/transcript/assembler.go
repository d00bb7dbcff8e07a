package transcript

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	cserrors "github.com/finesaaa/chatstats/pkg/errors"
)

// Assemble parses one file's lines in order and returns the complete records.
//
// It folds the classified line stream over an explicit current-record
// accumulator: a header line flushes the open record and starts a new one, a
// continuation appends to the open record's message joined by "\n". Blank
// continuations are dropped so records never grow trailing empty lines, and
// continuations seen before any header are discarded rather than invented
// into a speaker. Output order is input order; nothing is reordered.
func Assemble(r io.Reader, sourceFile string) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	records := make([]Record, 0)
	var current *Record

	for scanner.Scan() {
		line := Classify(scanner.Text())
		switch line.Kind {
		case LineNewMessage:
			if current != nil {
				records = append(records, *current)
			}
			current = &Record{
				Timestamp:  line.Timestamp,
				Role:       line.Role,
				Speaker:    line.Speaker,
				Message:    line.Message,
				SourceFile: sourceFile,
			}
		case LineContinuation:
			if current == nil || line.Text == "" {
				continue
			}
			current.Message += "\n" + line.Text
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %v: %w", sourceFile, err, cserrors.ErrUnreadableInput)
	}

	if current != nil {
		records = append(records, *current)
	}
	return records, nil
}

// AssembleFile reads path fully into memory and assembles its records.
// The records' SourceFile is the file's base name. Content that is not valid
// UTF-8 fails with ErrUnreadableInput.
func AssembleFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s is not valid UTF-8 text: %w", filepath.Base(path), cserrors.ErrUnreadableInput)
	}
	return Assemble(bytes.NewReader(data), filepath.Base(path))
}
