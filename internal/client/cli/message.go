package cli

import (
	"fmt"
	"io"
	"strings"
)

// Severity classifies a status message.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// MessageArea is the single presentation primitive every page reports
// through: success, validation failure, and network failure all funnel here.
// A nil MessageArea is a valid no-op target.
type MessageArea struct {
	w     io.Writer
	label string

	text     string
	severity Severity
	hidden   bool
}

func NewMessageArea(w io.Writer, label string) *MessageArea {
	return &MessageArea{w: w, label: label, severity: SeverityInfo, hidden: true}
}

// Show replaces the area's content with the trimmed text. The severity is
// reset to info first and only applied when it is something other than info.
// An empty (or whitespace-only) text hides the area and writes nothing.
func (m *MessageArea) Show(text string, severity Severity) {
	if m == nil {
		return
	}

	trimmed := strings.TrimSpace(text)
	m.text = trimmed
	m.severity = SeverityInfo
	if severity != "" && severity != SeverityInfo {
		m.severity = severity
	}
	m.hidden = trimmed == ""
	if m.hidden {
		return
	}

	switch m.severity {
	case SeverityError:
		fmt.Fprintln(m.w, "error:", trimmed)
	case SeveritySuccess:
		fmt.Fprintln(m.w, "success:", trimmed)
	default:
		fmt.Fprintln(m.w, trimmed)
	}
}

// Clear hides the area.
func (m *MessageArea) Clear() {
	m.Show("", SeverityInfo)
}

func (m *MessageArea) Text() string {
	if m == nil {
		return ""
	}
	return m.text
}

func (m *MessageArea) Severity() Severity {
	if m == nil {
		return SeverityInfo
	}
	return m.severity
}

func (m *MessageArea) Hidden() bool {
	if m == nil {
		return true
	}
	return m.hidden
}
