package docdb

// PutResult is returned by every accepted single-document write: create,
// update, tombstone, or recreate.
type PutResult struct {
	ID  string `json:"_id"`
	Rev string `json:"_rev"`
}

// BulkItemResult is one element of a _bulk_docs response: either a
// PutResult shape or an error tag, never both.
type BulkItemResult struct {
	ID    string `json:"_id,omitempty"`
	Rev   string `json:"_rev,omitempty"`
	Error Tag    `json:"error,omitempty"`
}

// BulkGetResult is one element of a _bulk_gets response: either the full
// stored document or an error tag.
type BulkGetResult struct {
	Doc   map[string]interface{}
	Error Tag
}

// Row is a single line of an all_docs enumeration.
type Row struct {
	ID    string   `json:"id"`
	Key   string   `json:"key"`
	Value RowValue `json:"value"`
}

// RowValue carries the head revision of a row in an all_docs enumeration.
type RowValue struct {
	Rev string `json:"rev"`
}

// AllDocsResult is the full response shape of an all_docs enumeration.
type AllDocsResult struct {
	Rows      []Row `json:"rows"`
	TotalRows int   `json:"total_rows"`
	Offset    int   `json:"offset"`
}

// Info is the database metadata returned by GET /{db}.
type Info struct {
	Name            string `json:"name"`
	DocCount        int    `json:"doc_count"`
	DeletedDocCount int    `json:"deleted_doc_count"`
	UpdateSeq       string `json:"update_seq"`
}

const designDocID = "_design/_views"

const defaultAllDocsLimit = 10
