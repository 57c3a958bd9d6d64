package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TranscriptionReader parses a tab-separated transliteration file into
// records and serves them as a restartable Source.
//
// Expected row format (one transcription line per row, '#' comments and
// blank rows skipped):
//
//	page <TAB> line <TAB> system <TAB> section <TAB> placement <TAB> tokens
//
// where tokens is a dot-separated word sequence, e.g.
//
//	f1r	1	A	herbal	P	fachys.ykal.ar.ataiin.shol
//
// Position flags are derived while parsing: the first token of a row is
// line-initial, the last is line-final, and the first token of the first row
// of a page is paragraph-initial. Tokens with uncertain glyphs are kept here
// and dropped later by Filter, so KeepUncertain analyses stay possible.
type TranscriptionReader struct {
	records []Record
}

// minTranscriptionFields is the column count every row must have.
const minTranscriptionFields = 6

// ReadTranscription parses the whole input eagerly. Eager parsing keeps the
// resulting Source trivially restartable and the row order stable.
func ReadTranscription(r io.Reader) (*TranscriptionReader, error) {
	var (
		records  []Record
		seenPage = map[string]bool{}
		lineNo   int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lineNo++
		row := strings.TrimSpace(sc.Text())
		if row == "" || strings.HasPrefix(row, "#") {
			continue
		}
		fields := strings.Split(row, "\t")
		if len(fields) < minTranscriptionFields {
			return nil, fmt.Errorf("row %d: %w", lineNo, ErrMalformedLine)
		}
		page, line := fields[0], fields[1]
		system := System(fields[2])
		section := Section(fields[3])
		placement := fields[4]
		tokens := splitTokens(fields[5])
		paraInitial := !seenPage[page]
		seenPage[page] = true
		for i, text := range tokens {
			records = append(records, Record{
				Text:             text,
				Page:             page,
				Line:             line,
				System:           system,
				Section:          section,
				Placement:        placement,
				ParagraphInitial: paraInitial && i == 0,
				LineInitial:      i == 0,
				LineFinal:        i == len(tokens)-1,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: scan: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptySource
	}
	return &TranscriptionReader{records: records}, nil
}

// Each replays every parsed record in file order.
func (t *TranscriptionReader) Each(fn func(*Record) error) error {
	for i := range t.records {
		if err := fn(&t.records[i]); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of parsed records.
func (t *TranscriptionReader) Len() int { return len(t.records) }

// splitTokens splits a dot-separated token run, dropping empty segments
// (double dots mark illegible gaps in some transliterations).
func splitTokens(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ".") {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
