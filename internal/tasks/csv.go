package tasks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/shared"
)

// ReadQueriesCSV reads artist,title rows. A first row of "artist,title" (any case) is treated as a header,
// lines starting with # are comments and extra columns are ignored.
func ReadQueriesCSV(r io.Reader) ([]lyrics.Query, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var queries []lyrics.Query
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrInvalidInput, err)
		}

		if row == 0 && isHeader(record) {
			continue
		}

		line, _ := reader.FieldPos(0)
		if len(record) < 2 {
			return nil, fmt.Errorf("%w: line %d: expected artist,title", shared.ErrInvalidInput, line)
		}

		q := lyrics.Query{Artist: record[0], Title: record[1]}.Trimmed()
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func isHeader(record []string) bool {
	return len(record) >= 2 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "artist") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "title")
}
