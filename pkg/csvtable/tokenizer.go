// Package csvtable reads and writes delimited tables where each physical
// line is one record.
//
// Fields may be wrapped in double quotes to protect separators. Quotes are
// stripped rather than escaped, so a field can never contain a literal
// quote character:
//
//	Tokenize(`a,"b,c",d`, ',') // ["a", "b,c", "d"]
//
// EncodeRecord is the inverse for any fields free of quote characters:
//
//	Tokenize(EncodeRecord(fields, sep), sep) == fields
package csvtable

import (
	"strings"
	"unicode/utf8"

	"github.com/agentstation/gamecat/pkg/constants"
)

// Tokenize splits one line into fields. A separator ends a field only
// outside quotes; every quote toggles the quoted state and is dropped.
// The end of the line always closes the last field, even when empty.
// Unbalanced quotes are not an error: the quoted state simply runs to
// the end of the line.
func Tokenize(line string, separator rune) []string {
	var (
		fields  []string
		field   strings.Builder
		inQuote bool
	)

	// Bytes are copied through unchanged so text that is not valid UTF-8
	// survives a round trip.
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		switch {
		case r == constants.QuoteBorder:
			inQuote = !inQuote
		case r == separator && size == utf8.RuneLen(r) && !inQuote:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteString(line[i : i+size])
		}
		i += size
	}

	return append(fields, field.String())
}

// EncodeRecord joins fields with separator, quoting any field that
// contains a space or the separator. No trailing separator is written.
func EncodeRecord(fields []string, separator rune) string {
	var sb strings.Builder

	for i, field := range fields {
		if i > 0 {
			sb.WriteRune(separator)
		}
		if needsQuotes(field, separator) {
			sb.WriteRune(constants.QuoteBorder)
			sb.WriteString(field)
			sb.WriteRune(constants.QuoteBorder)
			continue
		}
		sb.WriteString(field)
	}

	return sb.String()
}

func needsQuotes(field string, separator rune) bool {
	return strings.ContainsRune(field, ' ') || strings.ContainsRune(field, separator)
}
