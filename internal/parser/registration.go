package parser

import (
	"database/sql"
	"strconv"
	"strings"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/pattern"
)

// Registration event types.
const (
	RegistrationAttempt  = "ATTEMPT"
	RegistrationResponse = "RESPONSE"
	RegistrationSuccess  = "SUCCESS"
	RegistrationFailure  = "FAILURE"
)

// ExtractRegistrationEvent classifies REGISTER related lines and pulls out
// the endpoints and, when present, the attempt number or response code.
func (parser *Parser) ExtractRegistrationEvent(entry *entity.LogEntry) (event *entity.RegistrationEvent, ok bool) {
	message := entry.Message
	lowered := strings.ToLower(message)

	var eventType string
	switch {
	case strings.Contains(lowered, "register attempt"):
		eventType = RegistrationAttempt
	case strings.Contains(lowered, "register response"):
		eventType = RegistrationResponse
	case strings.Contains(lowered, "registration successful"):
		eventType = RegistrationSuccess
	case strings.Contains(lowered, "registration failed"):
		eventType = RegistrationFailure
	case containsAny(lowered, "success", "ok", "200"):
		eventType = RegistrationSuccess
	case containsAny(lowered, "fail", "error", "timeout", "unauthorized"):
		eventType = RegistrationFailure
	default:
		eventType = RegistrationAttempt
	}

	event = &entity.RegistrationEvent{
		Timestamp: entry.Timestamp,
		EventType: eventType,
	}
	if match := pattern.ServerURI.FindString(message); match != "" {
		event.ServerURI = sql.NullString{String: match, Valid: true}
	}
	if match := pattern.ClientURI.FindString(message); match != "" {
		event.ClientURI = sql.NullString{String: match, Valid: true}
	}
	if match := pattern.RegisterAttempt.FindStringSubmatch(message); match != nil {
		if attempt, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			event.AttemptNumber = sql.NullInt64{Int64: attempt, Valid: true}
		}
	}
	if match := pattern.RegisterResponse.FindStringSubmatch(message); match != nil {
		if code, err := strconv.ParseInt(match[1], 10, 64); err == nil {
			event.ResponseCode = sql.NullInt64{Int64: code, Valid: true}
		}
		event.ResponseText = sql.NullString{String: match[2], Valid: true}
	}
	ok = true
	return
}

func containsAny(message string, words ...string) bool {
	for _, word := range words {
		if strings.Contains(message, word) {
			return true
		}
	}
	return false
}
