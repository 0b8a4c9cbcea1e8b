package csvtable

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/errors"
)

// Table holds the header and records of one delimited file.
// Every stored record has exactly Columns() fields.
type Table struct {
	header    []string
	records   [][]string
	columns   int
	separator rune
	skipped   int
}

// Option configures a Table created with New.
type Option func(*Table)

// WithHeader sets the header row written before the records.
func WithHeader(header []string) Option {
	return func(t *Table) {
		t.header = cloneRecord(header)
	}
}

// New creates an empty table with a fixed arity.
func New(separator rune, columns int, opts ...Option) *Table {
	t := &Table{
		columns:   columns,
		separator: separator,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Load reads a whole file into a table with the given arity.
//
// Lines whose token count differs from columns are dropped silently.
// The first surviving line becomes the header and the rest become
// records. A path without the .csv extension is a FormatError, and a
// read failure is an IOError.
func Load(path string, separator rune, columns int) (*Table, error) {
	if err := checkExtension(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	return Parse(bytes.NewReader(data), separator, columns)
}

// Parse builds a table from r using the same rules as Load. Lines have no
// length limit.
func Parse(r io.Reader, separator rune, columns int) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.WrapIO("read", "", err)
	}

	t := New(separator, columns)
	if len(data) == 0 {
		return t, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")

	first := true
	for _, line := range lines {
		record := Tokenize(strings.TrimSuffix(line, "\r"), separator)
		if len(record) != columns {
			t.skipped++
			continue
		}
		if first {
			t.header = record
			first = false
			continue
		}
		t.records = append(t.records, record)
	}

	return t, nil
}

// Header returns a copy of the header row.
func (t *Table) Header() []string {
	return cloneRecord(t.header)
}

// Records returns a deep copy of all records.
func (t *Table) Records() [][]string {
	records := make([][]string, len(t.records))
	for i, record := range t.records {
		records[i] = cloneRecord(record)
	}
	return records
}

// Len returns the number of records, excluding the header.
func (t *Table) Len() int {
	return len(t.records)
}

// Columns returns the fixed record arity.
func (t *Table) Columns() int {
	return t.columns
}

// Separator returns the field separator.
func (t *Table) Separator() rune {
	return t.separator
}

// Skipped returns how many lines Load dropped for having the wrong arity.
func (t *Table) Skipped() int {
	return t.skipped
}

// AppendRecord adds a record at the end of the table.
func (t *Table) AppendRecord(fields []string) error {
	if len(fields) != t.columns {
		return &errors.ValidationError{
			Field:   "record",
			Value:   len(fields),
			Message: "wrong record length",
		}
	}

	t.records = append(t.records, cloneRecord(fields))
	return nil
}

// Lines returns every record encoded as one line, without the header.
func (t *Table) Lines() []string {
	lines := make([]string, len(t.records))
	for i, record := range t.records {
		lines[i] = EncodeRecord(record, t.separator)
	}
	return lines
}

// WriteTo writes the header, when present, followed by one line per record.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	writeLine := func(record []string) error {
		written, err := bw.WriteString(EncodeRecord(record, t.separator) + "\n")
		n += int64(written)
		return err
	}

	if len(t.header) > 0 {
		if err := writeLine(t.header); err != nil {
			return n, err
		}
	}
	for _, record := range t.records {
		if err := writeLine(record); err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// Write stores the table at path, replacing any existing file.
// A path without the .csv extension is a FormatError, and a write
// failure is an IOError.
func (t *Table) Write(path string) error {
	if err := checkExtension(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return errors.WrapIO("write", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	return nil
}

func checkExtension(path string) error {
	if filepath.Ext(path) != constants.CSVExtension {
		return errors.NewFormatError(path, constants.CSVExtension)
	}
	return nil
}

func cloneRecord(record []string) []string {
	if record == nil {
		return nil
	}
	clone := make([]string, len(record))
	copy(clone, record)
	return clone
}
