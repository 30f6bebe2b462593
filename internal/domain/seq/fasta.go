package seq

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/Synergetic-ai/wc-kb/pkg/errors"
)

// Record is a single FASTA record: the first whitespace-delimited token of
// the header line is the record id.
type Record struct {
	ID          string
	Description string
	Sequence    string
}

// ParseRecords reads all FASTA records from r.  Header lines begin with '>';
// sequence lines are concatenated verbatim.
func ParseRecords(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	var records []Record
	var current *Record
	var body strings.Builder
	flush := func() {
		if current != nil {
			current.Sequence = body.String()
			records = append(records, *current)
			body.Reset()
		}
	}
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			flush()
			header := strings.TrimPrefix(line, ">")
			id, desc := header, ""
			if i := strings.IndexAny(header, " \t"); i >= 0 {
				id, desc = header[:i], strings.TrimSpace(header[i+1:])
			}
			current = &Record{ID: id, Description: desc}
		} else if current != nil {
			body.WriteString(strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSeqSourceUnavailable, "failed to read sequence data")
	}
	flush()
	return records, nil
}

// ReadRecord opens the FASTA file at path, extracts the sequence of the
// record with the given id, and closes the file.  No handle is retained:
// repeated calls reopen and reread, so callers needing performance should
// memoize above this layer.
func ReadRecord(path, id string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeSeqSourceUnavailable, "cannot open sequence file").
			WithDetail(path)
	}
	defer f.Close()

	records, perr := ParseRecords(f)
	if perr != nil {
		return "", perr
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec.Sequence, nil
		}
	}
	return "", errors.Newf(errors.ErrCodeSeqRecordNotFound, "record %q not found in %s", id, path)
}
