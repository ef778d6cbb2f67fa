package pattern

import "regexp"

// Compiled expressions for the Yeastar pbxlog format.
var (
	LogEntry         = regexp.MustCompile(`^\[([^\]]+)\] ([A-Z]+)\[(\d+)\] ([^:]+):(\d+) (.*)`)
	SIPTransmit      = regexp.MustCompile(`Transmitting SIP (\w+) \((\d+) bytes\) to ([^:]+):(\d+)`)
	SIPReceive       = regexp.MustCompile(`Received SIP (\w+) \((\d+) bytes\) from ([^:]+):(\d+)`)
	RegisterAttempt  = regexp.MustCompile(`Outbound REGISTER attempt (\d+) to '([^']+)' with client '([^']+)'`)
	RegisterResponse = regexp.MustCompile(`Received REGISTER response (\d+)\(([^)]+)\)`)
	CDRInsert        = regexp.MustCompile(`INSERT INTO cdr.*VALUES \((.*)\)`)
	CallFlow         = regexp.MustCompile(`Current callflow \[([^\]]+)\], callnote switch:\[(\d+)\]`)
	DialEvent        = regexp.MustCompile(`lastapp.*Dial.*'([^']+)'`)
	MySQLError       = regexp.MustCompile(`MySQL.*Error \((\d+)\): (.*)`)
	ServerURI        = regexp.MustCompile(`sip:([^@]+@)?([^:;]+):(\d+)`)
	ClientURI        = regexp.MustCompile(`sip:[^@]+@[^:;]+:\d+`)
	ErrorCode        = regexp.MustCompile(`error[:\s]*(\d+)`)
)

// NamedPattern pairs an expression with its display name.
type NamedPattern struct {
	Name       string
	Expression *regexp.Regexp
}

// All lists every expression in a stable order for display.
func All() []NamedPattern {
	return []NamedPattern{
		{"log_entry", LogEntry},
		{"sip_transmit", SIPTransmit},
		{"sip_receive", SIPReceive},
		{"register_attempt", RegisterAttempt},
		{"register_response", RegisterResponse},
		{"cdr_insert", CDRInsert},
		{"call_flow", CallFlow},
		{"dial_event", DialEvent},
		{"mysql_error", MySQLError},
		{"server_uri", ServerURI},
		{"client_uri", ClientURI},
		{"error_code", ErrorCode},
	}
}

// Log type classifications.
const (
	TypeSIP          = "SIP"
	TypeCDR          = "CDR"
	TypeRegistration = "REGISTRATION"
	TypeDatabase     = "DATABASE"
	TypeSystem       = "SYSTEM"
	TypeConfig       = "CONFIG"
	TypeGeneral      = "GENERAL"
)

// Default database file name.
const DefaultDatabaseName = "pbx_analysis.db"
