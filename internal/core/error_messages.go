package core

// Error codes give each failed run a stable identifier in the log output.
//
// # Import Errors (IMP001-IMP099)
//
//	IMP001 - File not found            "no such file"
//	IMP002 - Empty input               "empty input"
//	IMP003 - Too many fields           "too many fields"
//	IMP004 - Missing identifier        "missing identifier"
//	IMP005 - Invalid number            "invalid number"
//	IMP006 - Invalid integer           "invalid integer"
//	IMP007 - Invalid date              "invalid date"
//	IMP008 - Encoding error            "encoding"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - No valid rows             "no valid rows"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Cancelled                 "context canceled"
//	RUN002 - Timed out                 "context deadline exceeded"
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate identifier       "duplicate key"
//	DB002 - Connection refused         "connection refused"
//	DB003 - Authentication failed      "authentication failed"
//	DB004 - Unknown database           "does not exist"
//	DB005 - Value out of range         "out of range", "value too long"
//	DB006 - Timeout                    "timeout"
//
// # Default Error (ERR000)
//
// Patterns are matched case-insensitively with strings.Contains. The first
// match wins, so specific patterns come before general ones.

import (
	"fmt"
	"strings"
)

// UserMessage describes an error for operators.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Stable code for log searches
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	// Input file
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "Input file not found",
			Action:  "Check IMPORT_FILE",
			Code:    "IMP001",
		},
	},
	{
		pattern: "empty input",
		msg: UserMessage{
			Message: "Input file has no data rows",
			Action:  "Provide a file with a header and at least one record",
			Code:    "IMP002",
		},
	},
	{
		pattern: "too many fields",
		msg: UserMessage{
			Message: "A line has more fields than the record layout",
			Action:  "Separate fields with two or more spaces and single spaces only inside a field",
			Code:    "IMP003",
		},
	},
	{
		pattern: "missing identifier",
		msg: UserMessage{
			Message: "A line has no customer identifier",
			Action:  "Every record needs a CPF in the first column",
			Code:    "IMP004",
		},
	},
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "A ticket value is not numeric",
			Action:  "Use digits with a single ',' or '.' decimal separator",
			Code:    "IMP005",
		},
	},
	{
		pattern: "invalid integer",
		msg: UserMessage{
			Message: "A flag column is not an integer",
			Action:  "Use 0 or 1 for private and incompleto",
			Code:    "IMP006",
		},
	},
	{
		pattern: "invalid date",
		msg: UserMessage{
			Message: "Invalid date format detected",
			Action:  "Use YYYY-MM-DD or DD/MM/YYYY",
			Code:    "IMP007",
		},
	},
	{
		pattern: "encoding",
		msg: UserMessage{
			Message: "Input file could not be decoded",
			Action:  "Set IMPORT_ENCODING to utf-8, latin1 or windows-1252",
			Code:    "IMP008",
		},
	},

	// Validation
	{
		pattern: "no valid rows",
		msg: UserMessage{
			Message: "Every record was dropped by validation",
			Action:  "Check the identifier column for malformed values",
			Code:    "VAL001",
		},
	},

	// Run control. Checked before the generic "timeout" pattern.
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Import was cancelled",
			Action:  "Run the import again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Import timed out",
			Action:  "Raise IMPORT_TIMEOUT or check database latency",
			Code:    "RUN002",
		},
	},

	// Database
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "The same CPF appears more than once",
			Action:  "Remove duplicate identifiers from the input file",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Check DB_HOST and DB_PORT",
			Code:    "DB002",
		},
	},
	{
		pattern: "authentication failed",
		msg: UserMessage{
			Message: "Database rejected the credentials",
			Action:  "Check DB_USER and DB_PASSWORD",
			Code:    "DB003",
		},
	},
	{
		pattern: "does not exist",
		msg: UserMessage{
			Message: "Database not found",
			Action:  "Check DB_NAME",
			Code:    "DB004",
		},
	},
	{
		pattern: "out of range",
		msg: UserMessage{
			Message: "A value does not fit its column",
			Action:  "Ticket values allow 14 integer digits and store identifiers 18 characters",
			Code:    "DB005",
		},
	},
	{
		pattern: "value too long",
		msg: UserMessage{
			Message: "A value does not fit its column",
			Action:  "Ticket values allow 14 integer digits and store identifiers 18 characters",
			Code:    "DB005",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Please try again",
			Code:    "DB006",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log for the underlying error",
	Code:    "ERR000",
}

// MapError converts an error to a UserMessage. Returns an empty UserMessage
// for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError formats err as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
