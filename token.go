// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

// Token is the type of a lexical token produced by the Scanner.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token

	Dot          // "."
	Equals       // "="
	Comma        // ","
	LBracket     // "["
	RBracket     // "]"
	LDoubleBrack // "[["
	RDoubleBrack // "]]"
	LBrace       // "{"
	RBrace       // "}"

	BasicStr          // basic string: "..."
	MultilineBasicStr // multiline basic string: """..."""
	LiteralStr        // literal string: '...'
	MultilineLitStr   // multiline literal string: '''...'''

	IntegerTok       // integer scalar
	FloatTok         // floating-point scalar
	BoolTok          // true / false
	DateTimeTok      // offset date-time
	LocalDateTimeTok // local date-time, no offset
	LocalDateTok     // local date, no time
	LocalTimeTok     // local time, no date

	Literal // bare key (key mode only)

	LineFeed // end of a logical line
	EOF      // end of input
)

var tokenStr = [...]string{
	Invalid:           "invalid token",
	Dot:                `"."`,
	Equals:             `"="`,
	Comma:              `","`,
	LBracket:           `"["`,
	RBracket:           `"]"`,
	LDoubleBrack:       `"[["`,
	RDoubleBrack:       `"]]"`,
	LBrace:             `"{"`,
	RBrace:             `"}"`,
	BasicStr:           "basic string",
	MultilineBasicStr:  "multiline basic string",
	LiteralStr:         "literal string",
	MultilineLitStr:    "multiline literal string",
	IntegerTok:         "integer",
	FloatTok:           "float",
	BoolTok:            "boolean",
	DateTimeTok:        "datetime",
	LocalDateTimeTok:   "local datetime",
	LocalDateTok:       "local date",
	LocalTimeTok:       "local time",
	Literal:            "bare key",
	LineFeed:           "newline",
	EOF:                "end of input",
}

func (t Token) String() string {
	if int(t) >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[t]
}

// isStringToken reports whether t is one of the four string lexical forms.
func isStringToken(t Token) bool {
	switch t {
	case BasicStr, MultilineBasicStr, LiteralStr, MultilineLitStr:
		return true
	}
	return false
}

