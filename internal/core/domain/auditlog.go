package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AuditLog is an ordered, append-only list of derivation messages.
// Append never modifies the receiver, so a config derived from another
// inherits its parent's messages without sharing storage.
type AuditLog struct {
	entries []string
}

// NewAuditLog returns a log holding entries in order.
func NewAuditLog(entries ...string) AuditLog {
	return AuditLog{entries: append([]string(nil), entries...)}
}

// Append returns a new log with the formatted message added at the end.
func (l AuditLog) Append(format string, args ...any) AuditLog {
	next := make([]string, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	return AuditLog{entries: append(next, fmt.Sprintf(format, args...))}
}

// Entries returns a copy of the messages in order.
func (l AuditLog) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Len returns the number of messages.
func (l AuditLog) Len() int {
	return len(l.entries)
}

// String joins the messages with newlines.
func (l AuditLog) String() string {
	return strings.Join(l.entries, "\n")
}

// MarshalJSON encodes the log as a JSON array of strings.
func (l AuditLog) MarshalJSON() ([]byte, error) {
	if l.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.entries)
}

// UnmarshalJSON decodes a JSON array of strings.
func (l *AuditLog) UnmarshalJSON(data []byte) error {
	var entries []string
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	l.entries = entries
	return nil
}
