package docdb

import "fmt"

// Tag identifies a stable, externally meaningful failure reason. The HTTP
// layer (web/docdb) maps tags to status codes; the core never speaks HTTP.
type Tag string

// Tags used across the document store and the registry. Keep these in sync
// with spec §7 — they are part of the wire contract for bulk responses.
const (
	TagInvalidDBName Tag = "invalid_db_name"
	TagDBExists      Tag = "db_exists"
	TagDBNotFound    Tag = "db_not_found"
	TagInvalidBody   Tag = "invalid_body"
	TagInvalidRevID  Tag = "invalid_rev_id"
	TagReservedField Tag = "reserved_field"
	TagDocConflict   Tag = "doc_conflict"
	TagDocNotFound   Tag = "doc_not_found"
	TagEmptyBulk     Tag = "empty_bulk"
)

// Error is the only error type the core produces. Every rejection is
// tagged so callers (and tests) can compare against a stable string
// rather than parsing prose.
type Error struct {
	Tag     Tag
	Subject string // usually a db or doc id, for log context
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return string(e.Tag)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Subject)
}

func newErr(tag Tag, subject string) *Error {
	return &Error{Tag: tag, Subject: subject}
}

// Is lets callers use errors.Is(err, &Error{Tag: TagDocConflict}) style
// comparisons without exposing the Subject field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Tag == e.Tag
}

// TagOf extracts the Tag carried by err, if any.
func TagOf(err error) (Tag, bool) {
	e, ok := err.(*Error)
	if !ok {
		return "", false
	}
	return e.Tag, true
}
