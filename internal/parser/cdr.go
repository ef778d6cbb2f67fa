package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/pattern"
)

// The VALUES list carries at least this many fields in every firmware
// revision seen so far.
const minimumCDRValues = 20

// ParseCDREntry extracts a call record from an "INSERT INTO cdr" statement.
func (parser *Parser) ParseCDREntry(message string) (record *entity.CallRecord, ok bool) {
	match := pattern.CDRInsert.FindStringSubmatch(message)
	if match == nil {
		return
	}
	values := splitCDRValues(match[1])
	if len(values) < minimumCDRValues {
		return
	}

	rawValues, err := json.Marshal(values)
	if err != nil {
		return
	}
	record = &entity.CallRecord{
		CallDatetime:       valueAt(values, 0),
		TimestampUnix:      int64(intAt(values, 1)),
		UID:                valueAt(values, 2),
		CallerID:           valueAt(values, 3),
		SourceNumber:       valueAt(values, 4),
		SourceName:         valueAt(values, 5),
		DestinationNumber:  valueAt(values, 6),
		DestinationName:    valueAt(values, 7),
		Context:            valueAt(values, 8),
		Channel:            valueAt(values, 9),
		DestinationChannel: valueAt(values, 10),
		Trunk:              valueAt(values, 11),
		LastApp:            valueAt(values, 12),
		LastData:           valueAt(values, 13),
		Duration:           intAt(values, 14),
		RingDuration:       intAt(values, 15),
		TalkDuration:       intAt(values, 16),
		Disposition:        valueAt(values, 17),
		CallType:           valueAt(values, 19),
		UniqueID:           valueAt(values, 20),
		ParsedData:         string(rawValues),
	}
	ok = true
	return
}

// splitCDRValues splits the VALUES list on commas, honoring single-quoted
// fields that may themselves contain commas.
func splitCDRValues(values string) (fields []string) {
	var current strings.Builder
	inQuotes := false
	for _, character := range values {
		switch {
		case character == '\'':
			inQuotes = !inQuotes
		case character == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(character)
		}
	}
	if current.Len() > 0 {
		fields = append(fields, strings.TrimSpace(current.String()))
	}
	return
}

func valueAt(values []string, index int) string {
	if index < len(values) {
		return values[index]
	}
	return ""
}

func intAt(values []string, index int) int {
	parsed, err := strconv.Atoi(valueAt(values, index))
	if err != nil {
		return 0
	}
	return parsed
}
