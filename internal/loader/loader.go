package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Row is one task record: a timed activity from one event to another.
type Row struct {
	From     uint64
	To       uint64
	Duration uint64
	Name     string
}

// RowError reports an input row that could not be decoded into the
// four required fields. Line is 1-based.
type RowError struct {
	Line int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Load reads CSV task rows (from, to, duration, name) from r.
// There is no header row; whitespace around fields is trimmed
// and row order is preserved.
func Load(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.TrimLeadingSpace = true

	var rows []Row
	line := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}

		row, err := decodeRecord(record)
		if err != nil {
			return nil, &RowError{Line: line, Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeRecord(record []string) (Row, error) {
	from, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("from event %q: not an unsigned integer", record[0])
	}
	to, err := strconv.ParseUint(strings.TrimSpace(record[1]), 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("to event %q: not an unsigned integer", record[1])
	}
	duration, err := strconv.ParseUint(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return Row{}, fmt.Errorf("duration %q: not an unsigned integer", record[2])
	}
	return Row{
		From:     from,
		To:       to,
		Duration: duration,
		Name:     strings.TrimSpace(record[3]),
	}, nil
}

// LoadJSON reads task rows from a JSON array of
// {"from":1,"to":2,"duration":3,"name":"task"} objects.
func LoadJSON(data []byte) ([]Row, error) {
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("expected a JSON array of task rows")
	}

	var rows []Row
	var rowErr *RowError
	line := 0
	parsed.ForEach(func(_, item gjson.Result) bool {
		line++
		row, err := decodeJSONItem(item)
		if err != nil {
			rowErr = &RowError{Line: line, Err: err}
			return false
		}
		rows = append(rows, row)
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return rows, nil
}

func decodeJSONItem(item gjson.Result) (Row, error) {
	from, err := jsonUint(item, "from")
	if err != nil {
		return Row{}, err
	}
	to, err := jsonUint(item, "to")
	if err != nil {
		return Row{}, err
	}
	duration, err := jsonUint(item, "duration")
	if err != nil {
		return Row{}, err
	}
	name := item.Get("name")
	if name.Type != gjson.String {
		return Row{}, fmt.Errorf("field %q: missing or not a string", "name")
	}
	return Row{
		From:     from,
		To:       to,
		Duration: duration,
		Name:     strings.TrimSpace(name.String()),
	}, nil
}

func jsonUint(item gjson.Result, field string) (uint64, error) {
	v := item.Get(field)
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("field %q: missing or not a number", field)
	}
	f := v.Float()
	if f < 0 || f != float64(uint64(f)) {
		return 0, fmt.Errorf("field %q: %v is not an unsigned integer", field, v.Value())
	}
	return v.Uint(), nil
}

// LoadFile loads rows from path. An empty path or "-" reads CSV from
// stdin; a .json extension selects the JSON format.
func LoadFile(path string) ([]Row, error) {
	if path == "" || path == "-" {
		return Load(os.Stdin)
	}
	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return LoadJSON(data)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
