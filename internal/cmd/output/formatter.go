// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/gamecat/internal/cmd/constants"
	"github.com/agentstation/gamecat/internal/cmd/table"
	"github.com/agentstation/gamecat/pkg/catalogs"
	pkgconstants "github.com/agentstation/gamecat/pkg/constants"
	"github.com/agentstation/gamecat/pkg/csvtable"
	"github.com/agentstation/gamecat/pkg/errors"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = constants.FormatTable
	// FormatJSON represents JSON output format.
	FormatJSON Format = constants.FormatJSON
	// FormatYAML represents YAML output format.
	FormatYAML Format = constants.FormatYAML
	// FormatWide represents wide table output format.
	FormatWide Format = constants.FormatWide
	// FormatCSV represents delimited output re-encoded by the record tokenizer.
	FormatCSV Format = constants.FormatCSV
)

// Formats lists every accepted output format.
var Formats = []Format{FormatTable, FormatWide, FormatJSON, FormatYAML, FormatCSV}

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatCSV:
		return &CSVFormatter{Separator: pkgconstants.DefaultSeparator}
	case FormatTable, FormatWide:
		return &TableFormatter{Wide: format == FormatWide}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	yamlData, err := yaml.MarshalWithOptions(data,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// CSVFormatter re-encodes table rows as delimited records.
type CSVFormatter struct {
	Separator rune
}

// Format writes games with the canonical header, or any table-shaped data
// with its own headers.
func (f *CSVFormatter) Format(w io.Writer, data any) error {
	sep := f.Separator
	if sep == 0 {
		sep = pkgconstants.DefaultSeparator
	}

	var t *csvtable.Table
	switch v := data.(type) {
	case []catalogs.Game:
		t = catalogs.ToTable(v, sep)
	case *csvtable.Table:
		t = v
	case Data:
		t = dataToCSV(v, sep)
	default:
		tableData := (&TableFormatter{}).convertToTableData(data)
		if tableData == nil {
			return &errors.ValidationError{Field: "format", Value: "csv", Message: "data is not tabular"}
		}
		t = dataToCSV(*tableData, sep)
	}

	_, err := t.WriteTo(w)
	return err
}

func dataToCSV(data Data, sep rune) *csvtable.Table {
	columns := len(data.Headers)
	if columns == 0 && len(data.Rows) > 0 {
		columns = len(data.Rows[0])
	}

	t := csvtable.New(sep, columns, csvtable.WithHeader(data.Headers))
	for _, row := range data.Rows {
		// Rows with a different width cannot be encoded under this header.
		_ = t.AppendRecord(row)
	}
	return t
}

// TableFormatter outputs table format.
type TableFormatter struct {
	Wide bool
}

// Format outputs data in table format.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	// Type switch to handle different data types
	switch v := data.(type) {
	case Data:
		return f.formatTable(w, v)
	default:
		// Try to convert structs/slices to table format using reflection
		if tableData := f.convertToTableData(data); tableData != nil {
			return f.formatTable(w, *tableData)
		}

		// Fall back to JSON for non-table data
		jsonFormatter := &JSONFormatter{Indent: "  "}
		return jsonFormatter.Format(w, data)
	}
}

func (f *TableFormatter) formatTable(w io.Writer, data Data) error {
	// Use tablewriter for proper table formatting
	opts := []tablewriter.Option{}

	// Build config
	config := tablewriter.Config{}

	// Apply column alignment if specified
	if len(data.ColumnAlignment) > 0 {
		// Translate table.Align type to tablewriter's tw.Align type
		twAlign := make([]tw.Align, len(data.ColumnAlignment))
		for i, align := range data.ColumnAlignment {
			switch align {
			case table.AlignLeft:
				twAlign[i] = tw.AlignLeft
			case table.AlignCenter:
				twAlign[i] = tw.AlignCenter
			case table.AlignRight:
				twAlign[i] = tw.AlignRight
			default: // table.AlignDefault
				twAlign[i] = tw.Skip
			}
		}

		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	opts = append(opts, tablewriter.WithConfig(config))
	table := tablewriter.NewTable(w, opts...)

	// Set headers if present
	if len(data.Headers) > 0 {
		// Convert headers to []any for the new API
		headers := make([]any, len(data.Headers))
		for i, h := range data.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	// Add rows
	for _, row := range data.Rows {
		// Convert row to []any for the new API
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}

// Data represents data formatted for table output.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []table.Align // Optional: column alignment (use table.AlignDefault, table.AlignLeft, table.AlignCenter, table.AlignRight)
}

// FromTable converts table package data to formatter data.
func FromTable(d table.Data) Data {
	return Data{
		Headers:         d.Headers,
		Rows:            d.Rows,
		ColumnAlignment: d.ColumnAlignment,
	}
}

// DetectFormat auto-detects format based on the destination writer.
func DetectFormat(explicitFormat string, w io.Writer) Format {
	// Use explicit format if provided
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	// Check if output is a terminal
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatWide, FormatCSV, "":
		return format, nil
	default:
		return "", &errors.ValidationError{
			Field:   "format",
			Value:   s,
			Message: "must be one of: table, wide, json, yaml, csv",
		}
	}
}

// convertToTableData attempts to convert structs and struct slices to Data
// using reflection. Unexported fields are skipped.
func (f *TableFormatter) convertToTableData(data any) *Data {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Pointer && !v.IsNil() {
		v = v.Elem()
	}

	switch {
	case v.Kind() == reflect.Slice && v.Len() > 0 && v.Index(0).Kind() == reflect.Struct:
		return structSliceToTableData(v)
	case v.Kind() == reflect.Struct:
		return singleStructToTableData(v)
	default:
		return nil
	}
}

func structSliceToTableData(v reflect.Value) *Data {
	fields := exportedFields(v.Index(0).Type())

	headers := make([]string, len(fields))
	for i, field := range fields {
		headers[i] = columnName(field)
	}

	rows := make([][]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		row := make([]string, len(fields))
		for j, field := range fields {
			row[j] = fmt.Sprintf("%v", elem.FieldByIndex(field.Index).Interface())
		}
		rows = append(rows, row)
	}

	return &Data{Headers: headers, Rows: rows}
}

// singleStructToTableData converts a single struct to a key-value table.
func singleStructToTableData(v reflect.Value) *Data {
	fields := exportedFields(v.Type())

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{
			columnName(field),
			fmt.Sprintf("%v", v.FieldByIndex(field.Index).Interface()),
		})
	}

	return &Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

func exportedFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if field := t.Field(i); field.IsExported() && field.Tag.Get("json") != "-" {
			fields = append(fields, field)
		}
	}
	return fields
}

// columnName title-cases the json tag, falling back to the field name.
func columnName(field reflect.StructField) string {
	tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if tag == "" {
		return field.Name
	}
	return cases.Title(language.English).String(strings.ReplaceAll(tag, "_", " "))
}
