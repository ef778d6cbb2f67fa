package parser

import (
	"database/sql"
	"strconv"
	"strings"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/pattern"
)

// ExtractSystemEvent builds a system event from an ERROR or WARNING entry.
func (parser *Parser) ExtractSystemEvent(entry *entity.LogEntry) (event *entity.SystemEvent, ok bool) {
	if entry.Level != "ERROR" && entry.Level != "WARNING" {
		return
	}
	lowered := strings.ToLower(entry.Message)

	var category string
	switch {
	case strings.Contains(lowered, "mysql") || strings.Contains(lowered, "database"):
		category = pattern.TypeDatabase
	case strings.Contains(lowered, "sip"):
		category = pattern.TypeSIP
	case strings.Contains(lowered, "config"):
		category = pattern.TypeConfig
	case strings.Contains(lowered, "thread"):
		category = pattern.TypeSystem
	default:
		category = pattern.TypeGeneral
	}

	event = &entity.SystemEvent{
		Timestamp:   entry.Timestamp,
		EventType:   entry.Level,
		Category:    category,
		Description: entry.Message,
	}
	if match := pattern.ErrorCode.FindStringSubmatch(lowered); match != nil {
		if code, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			event.ErrorCode = sql.NullInt64{Int64: code, Valid: true}
		}
	}
	ok = true
	return
}
