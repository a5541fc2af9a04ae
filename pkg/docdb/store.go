package docdb

import (
	"sync"

	"github.com/nori-stack/docdb/pkg/logger"
)

// Database is a single named document container: the per-database mutex,
// the id→Document map, insertion order (including tombstones), and the
// counters/update_seq that spec §3 requires to stay coherent with them.
//
// Grounded on the teacher's couchdb.Database shape (pkg/couchdb/couchdb.go)
// generalized from a remote-client DTO into the authoritative in-memory
// record, with a sync.RWMutex replacing the teacher's lack of local state.
type Database struct {
	mu sync.RWMutex

	name            string
	docs            map[string]*Document
	order           []string
	docCount        int
	deletedDocCount int
	updateSeq       string

	idGen *IdGen
}

func newDatabase(name string, idGen *IdGen) *Database {
	db := &Database{
		name:  name,
		docs:  make(map[string]*Document),
		idGen: idGen,
	}
	design := &Document{
		ID:   designDocID,
		Rev:  idGen.NewRev(1, ""),
		Body: map[string]interface{}{},
	}
	db.docs[designDocID] = design
	db.order = append(db.order, designDocID)
	db.docCount = 1
	db.updateSeq = idGen.NewUpdateSeq()
	return db
}

// Info returns a point-in-time snapshot of the database's metadata.
func (db *Database) Info() Info {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return Info{
		Name:            db.name,
		DocCount:        db.docCount,
		DeletedDocCount: db.deletedDocCount,
		UpdateSeq:       db.updateSeq,
	}
}

// writeDecision is the outcome of the §4.C table, resolved before any
// mutation is applied.
type writeDecision int

const (
	decCreate writeDecision = iota
	decUpdate
	decTombstone
	decRecreate
)

// Put implements the write path of spec §4.C: urlID is the id from the
// URL for PUT, empty for POST; isPut distinguishes the two endpoints for
// the absent+_deleted row, which yields reserved_field on POST but
// doc_conflict on PUT. raw is the already-decoded JSON body.
func (db *Database) Put(urlID string, isPut bool, raw map[string]interface{}) (PutResult, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.putLocked(urlID, isPut, raw)
}

// putLocked is the write path of Put with the locking stripped out, so
// that BulkPut can run an entire batch of writes under one lock
// acquisition per spec §5 rather than one per item. Caller holds db.mu.
func (db *Database) putLocked(urlID string, isPut bool, raw map[string]interface{}) (PutResult, error) {
	in, ok := parseWriteInput(raw)
	if !ok {
		return PutResult{}, db.reject(urlID, TagInvalidBody)
	}

	if in.hasRev {
		if err := ValidateRevFormat(in.rev); err != nil {
			return PutResult{}, db.reject(urlID, TagInvalidRevID)
		}
	}

	id := urlID
	if isPut {
		if in.hasBodyID && in.bodyID != urlID {
			return PutResult{}, db.reject(urlID, TagDocConflict)
		}
	} else {
		if in.hasBodyID {
			id = in.bodyID
		} else {
			id = db.idGen.NewDocID()
		}
	}

	head, exists := db.docs[id]

	var dec writeDecision
	switch {
	case !exists:
		switch {
		case !in.hasRev && !in.deleted:
			dec = decCreate
		case in.hasRev:
			return PutResult{}, db.reject(id, TagDocConflict)
		case in.deleted:
			if isPut {
				return PutResult{}, db.reject(id, TagDocConflict)
			}
			return PutResult{}, db.reject(id, TagReservedField)
		}
	case head.Deleted:
		switch {
		case !in.hasRev && !in.deleted:
			dec = decRecreate
		default:
			return PutResult{}, db.reject(id, TagDocConflict)
		}
	default: // live
		switch {
		case !in.hasRev, in.hasRev && in.rev != head.Rev:
			return PutResult{}, db.reject(id, TagDocConflict)
		case in.deleted:
			dec = decTombstone
		default:
			dec = decUpdate
		}
	}

	return db.apply(id, head, exists, dec, in.body), nil
}

// reject records a rejected write and builds its error, consolidating
// the outcome-counter bump and log line shared by every decision-table
// failure branch.
func (db *Database) reject(id string, tag Tag) error {
	writeOutcomes.WithLabelValues(db.name, outcomeRejected).Inc()
	err := newErr(tag, id)
	logger.WithNamespace("docdb").
		WithFields(logger.Fields{"db": db.name, "id": id, "tag": tag}).
		Debugf("write rejected: %s", err)
	return err
}

// apply performs the mutation side of an accepted write: assigning the
// new revision, updating docs/order/counters, and refreshing update_seq.
// Caller holds db.mu.
func (db *Database) apply(id string, head *Document, existed bool, dec writeDecision, body map[string]interface{}) PutResult {
	var newGen int
	var priorHash string
	var deleted bool
	var outcome string

	switch dec {
	case decCreate:
		newGen = 1
		deleted = false
		outcome = outcomeCreated
	case decUpdate:
		newGen = head.Generation() + 1
		priorHash = head.Rev
		deleted = false
		outcome = outcomeUpdated
	case decTombstone:
		newGen = head.Generation() + 1
		priorHash = head.Rev
		deleted = true
		outcome = outcomeDeleted
	case decRecreate:
		newGen = head.Generation() + 1
		priorHash = head.Rev
		deleted = false
		outcome = outcomeRecreated
	}

	rev := db.idGen.NewRev(newGen, priorHash)
	wasLive := existed && !head.Deleted
	doc := &Document{ID: id, Rev: rev, Deleted: deleted, Body: body}
	db.docs[id] = doc

	if !existed {
		db.order = append(db.order, id)
	}

	nowLive := !deleted
	switch {
	case !existed:
		if nowLive {
			db.docCount++
		} else {
			db.deletedDocCount++
		}
	case wasLive && !nowLive:
		db.docCount--
		db.deletedDocCount++
	case !wasLive && nowLive:
		db.deletedDocCount--
		db.docCount++
	}

	db.updateSeq = db.idGen.NewUpdateSeq()
	writeOutcomes.WithLabelValues(db.name, outcome).Inc()

	logger.WithNamespace("docdb").
		WithFields(logger.Fields{"db": db.name, "id": id, "rev": rev, "outcome": outcome}).
		Debug("write applied")

	return PutResult{ID: id, Rev: rev}
}

// Delete implements spec §4.C's delete path: a write with _deleted=true.
// A supplied rev is validated for shape up front, same as any other
// write; an absent rev is left for putLocked's decision table to judge
// against the document head, so "missing" (409 doc_conflict) and
// "malformed" (400 invalid_rev_id) stay the distinct outcomes spec §6
// requires rather than both collapsing to invalid_rev_id.
func (db *Database) Delete(id, rev string) (PutResult, error) {
	body := map[string]interface{}{fieldDeleted: true}
	if rev != "" {
		if err := ValidateRevFormat(rev); err != nil {
			return PutResult{}, err
		}
		body[fieldRev] = rev
	}
	return db.Put(id, true, body)
}

// Get implements spec §4.C's read path: tombstones and absent ids both
// surface as doc_not_found.
func (db *Database) Get(id string) (map[string]interface{}, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	doc, ok := db.docs[id]
	if !ok || doc.Deleted {
		return nil, newErr(TagDocNotFound, id)
	}
	return doc.ToMap(), nil
}

// BulkPut implements spec §4.C's bulk write: the whole batch runs under a
// single db.mu acquisition so no other writer can interleave mid-bulk,
// with each item resolved independently against the single-doc decision
// table, in input order.
func (db *Database) BulkPut(items []map[string]interface{}) []BulkItemResult {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]BulkItemResult, len(items))
	for i, item := range items {
		// Every bulk item behaves like a POST: target id comes from the
		// item's own _id when present, else is generated.
		var suppliedID string
		if idVal, ok := item[fieldID]; ok {
			if s, ok := idToString(idVal); ok {
				suppliedID = s
			}
		}

		res, err := db.putLocked("", false, item)
		if err != nil {
			tag, _ := TagOf(err)
			br := BulkItemResult{Error: tag}
			if suppliedID != "" {
				br.ID = suppliedID
			}
			out[i] = br
			continue
		}
		out[i] = BulkItemResult{ID: res.ID, Rev: res.Rev}
	}
	return out
}

// BulkGet implements spec §4.C's bulk read: revision mismatches surface
// as doc_not_found rather than doc_conflict, per the source test corpus.
func (db *Database) BulkGet(items []map[string]interface{}) []BulkGetResult {
	db.mu.RLock()
	defer db.mu.RUnlock()

	out := make([]BulkGetResult, len(items))
	for i, item := range items {
		id, _ := idToString(item[fieldID])

		var rev string
		var hasRev bool
		if rv, ok := item[fieldRev]; ok {
			if s, ok := rv.(string); ok {
				rev = s
				hasRev = true
			}
		}

		if hasRev {
			if err := ValidateRevFormat(rev); err != nil {
				out[i] = BulkGetResult{Error: TagInvalidRevID}
				continue
			}
		}

		doc, ok := db.docs[id]
		if !ok || doc.Deleted {
			out[i] = BulkGetResult{Error: TagDocNotFound}
			continue
		}
		if hasRev && rev != doc.Rev {
			out[i] = BulkGetResult{Error: TagDocNotFound}
			continue
		}
		out[i] = BulkGetResult{Doc: doc.ToMap()}
	}
	return out
}

// AllDocs implements spec §4.C's enumeration: iteration over non-
// tombstoned entries in insertion order, 1-based paging.
func (db *Database) AllDocs(page, limit int) AllDocsResult {
	if limit <= 0 {
		limit = defaultAllDocsLimit
	}
	if page <= 0 {
		page = 1
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	live := make([]string, 0, len(db.order))
	for _, id := range db.order {
		if doc := db.docs[id]; !doc.Deleted {
			live = append(live, id)
		}
	}

	start := (page - 1) * limit
	end := start + limit
	if start > len(live) {
		start = len(live)
	}
	if end > len(live) {
		end = len(live)
	}

	rows := make([]Row, 0, end-start)
	for _, id := range live[start:end] {
		doc := db.docs[id]
		rows = append(rows, Row{ID: id, Key: id, Value: RowValue{Rev: doc.Rev}})
	}

	return AllDocsResult{
		Rows:      rows,
		TotalRows: db.docCount,
		Offset:    1 + start,
	}
}
