package models

import "strings"

// Seniority is an ordered employee level. Higher values outrank lower ones.
// The level column holds free-form strings; comparing those lexically
// ("L10" < "L2") is wrong, so levels are parsed into this ordinal once at
// load time.
type Seniority int

const (
	SeniorityUnknown Seniority = iota
	SeniorityStaff
	SenioritySupport
	SeniorityManager
	SeniorityGeneralManager
)

// seniorityByLevel maps the known level strings. Unknown strings rank lowest
// rather than failing the load.
var seniorityByLevel = map[string]Seniority{
	"l1": SeniorityStaff,
	"l2": SenioritySupport,
	"l3": SeniorityManager,
	"l4": SeniorityGeneralManager,
}

// seniorityByTitle covers rows where the level column is empty and only the
// job title hints at rank.
var seniorityByTitle = map[string]Seniority{
	"it staff":            SeniorityStaff,
	"sales support agent": SenioritySupport,
	"it manager":          SeniorityManager,
	"sales manager":       SeniorityManager,
	"general manager":     SeniorityGeneralManager,
}

// ParseSeniority resolves an employee's level string and job title into a
// Seniority. The level column wins when both are present.
func ParseSeniority(level, title string) Seniority {
	if s, ok := seniorityByLevel[strings.ToLower(strings.TrimSpace(level))]; ok {
		return s
	}
	if s, ok := seniorityByTitle[strings.ToLower(strings.TrimSpace(title))]; ok {
		return s
	}
	return SeniorityUnknown
}

// String returns a human-readable label for the level.
func (s Seniority) String() string {
	switch s {
	case SeniorityStaff:
		return "staff"
	case SenioritySupport:
		return "support"
	case SeniorityManager:
		return "manager"
	case SeniorityGeneralManager:
		return "general manager"
	default:
		return "unknown"
	}
}
