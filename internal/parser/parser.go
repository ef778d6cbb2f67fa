package parser

import (
	"strconv"
	"strings"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/pattern"
)

// Parser turns raw pbxlog lines into typed records.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ParseLogEntry matches the standard log line layout:
// [timestamp] LEVEL[thread] module:line message
func (parser *Parser) ParseLogEntry(line string) (entry *entity.LogEntry, ok bool) {
	match := pattern.LogEntry.FindStringSubmatch(line)
	if match == nil {
		return
	}
	threadID, _ := strconv.Atoi(match[3])
	lineNumber, _ := strconv.Atoi(match[5])
	entry = &entity.LogEntry{
		Timestamp:  match[1],
		Level:      match[2],
		ThreadID:   threadID,
		Module:     match[4],
		LineNumber: lineNumber,
		Message:    match[6],
		LogType:    parser.ClassifyLogType(match[6]),
	}
	ok = true
	return
}

// ClassifyLogType keeps the original precedence order.
func (parser *Parser) ClassifyLogType(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case strings.Contains(message, "SIP"):
		return pattern.TypeSIP
	case strings.Contains(lowered, "cdr"):
		return pattern.TypeCDR
	case strings.Contains(message, "REGISTER"):
		return pattern.TypeRegistration
	case strings.Contains(message, "MySQL"):
		return pattern.TypeDatabase
	case strings.Contains(message, "threadpool"):
		return pattern.TypeSystem
	case strings.Contains(lowered, "config"):
		return pattern.TypeConfig
	default:
		return pattern.TypeGeneral
	}
}
