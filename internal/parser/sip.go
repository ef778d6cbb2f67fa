package parser

import (
	"regexp"
	"strconv"

	"pbxscope.dev/analyzer/internal/entity"
	"pbxscope.dev/analyzer/internal/pattern"
)

// SIP message directions.
const (
	DirectionTransmit = "TRANSMIT"
	DirectionReceive  = "RECEIVE"
)

// ExtractSIPTransmit matches "Transmitting SIP ... to host:port" lines.
func (parser *Parser) ExtractSIPTransmit(entry *entity.LogEntry) (message *entity.SIPMessage, ok bool) {
	return extractSIP(entry, pattern.SIPTransmit, DirectionTransmit, "REQUEST")
}

// ExtractSIPReceive matches "Received SIP ... from host:port" lines.
func (parser *Parser) ExtractSIPReceive(entry *entity.LogEntry) (message *entity.SIPMessage, ok bool) {
	return extractSIP(entry, pattern.SIPReceive, DirectionReceive, "RESPONSE")
}

func extractSIP(entry *entity.LogEntry, expression *regexp.Regexp, direction string, messageType string) (message *entity.SIPMessage, ok bool) {
	match := expression.FindStringSubmatch(entry.Message)
	if match == nil {
		return
	}
	bytesSize, _ := strconv.Atoi(match[2])
	remotePort, _ := strconv.Atoi(match[4])
	message = &entity.SIPMessage{
		Timestamp:   entry.Timestamp,
		Direction:   direction,
		MessageType: messageType,
		BytesSize:   bytesSize,
		RemoteHost:  match[3],
		RemotePort:  remotePort,
	}
	ok = true
	return
}
