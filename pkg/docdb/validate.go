package docdb

import (
	"encoding/json"
	"regexp"
)

// dbNameRe matches spec §3: lowercase letters/digits/underscore, starting
// with a letter. The two-character minimum is checked in ValidateDBName.
var dbNameRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// revRe matches spec §3/§4.B: "N-H" with N a positive integer and H at
// least 32 hex characters.
var revRe = regexp.MustCompile(`^[1-9][0-9]*-[0-9a-f]{32,}$`)

// ValidateDBName enforces the database naming rule in spec §3.
func ValidateDBName(name string) error {
	if len(name) < 2 || !dbNameRe.MatchString(name) {
		return newErr(TagInvalidDBName, name)
	}
	return nil
}

// ValidateRevFormat enforces the "N-H" shape described in spec §4.B.
// Callers only invoke this once a `_rev` has actually been supplied; a
// missing revision is a distinct case handled upstream (see Delete),
// not represented here as an empty string.
func ValidateRevFormat(rev string) error {
	if !revRe.MatchString(rev) {
		return newErr(TagInvalidRevID, rev)
	}
	return nil
}

// ParseRevGeneration returns the generation prefix of a well-formed rev.
// Callers must validate the rev first; this does not re-validate.
func ParseRevGeneration(rev string) int {
	gen := 0
	for i := 0; i < len(rev) && rev[i] != '-'; i++ {
		gen = gen*10 + int(rev[i]-'0')
	}
	return gen
}

// DecodeBodyObject parses raw JSON and enforces that it is a JSON object,
// per the invalid_body rule in spec §4.B. Arrays, scalars, null, and
// unparsable/missing bodies are all invalid for document writes and for
// the bulk envelopes.
func DecodeBodyObject(raw []byte) (map[string]interface{}, error) {
	if len(raw) == 0 {
		return nil, newErr(TagInvalidBody, "")
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, newErr(TagInvalidBody, "")
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, newErr(TagInvalidBody, "")
	}
	return m, nil
}

// DecodeBulkEnvelope validates the `{"_docs": [...]}` envelope shared by
// _bulk_docs and _bulk_gets (spec §4.B empty_bulk). It returns the raw
// item maps; callers decide per-item validity (e.g. bulk_get tolerates
// items without _rev where bulk_docs tolerates items without _id).
func DecodeBulkEnvelope(raw []byte) ([]map[string]interface{}, error) {
	obj, err := DecodeBodyObject(raw)
	if err != nil {
		return nil, err
	}
	rawDocs, ok := obj["_docs"]
	if !ok {
		return nil, newErr(TagEmptyBulk, "")
	}
	items, ok := rawDocs.([]interface{})
	if !ok || len(items) == 0 {
		return nil, newErr(TagEmptyBulk, "")
	}
	out := make([]map[string]interface{}, len(items))
	for i, raw := range items {
		m, ok := raw.(map[string]interface{})
		if !ok {
			// A non-object item is treated as an empty document body: a
			// bulk write creates it like a bare `{}` with a generated id,
			// and a bulk read reports it as doc_not_found.
			m = map[string]interface{}{}
		}
		out[i] = m
	}
	return out, nil
}
