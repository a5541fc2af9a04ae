package docdb

import (
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"github.com/gofrs/uuid"
	"golang.org/x/crypto/blake2b"
)

// IdGen mints document ids, revision tokens, and database update
// sequences. It is the Go expression of spec §4.A — grounded on the
// teacher's use of gofrs/uuid for opaque identifiers (pkg/couchdb.go's
// UUID helper) and golang.org/x/crypto for content hashing.
//
// The generation prefix of a revision is fixed by its inputs; the hash
// tail also folds in a random nonce, so two calls with the same inputs
// produce different tails.
type IdGen struct {
	counter uint64
}

// NewIdGen returns a ready-to-use generator.
func NewIdGen() *IdGen {
	return &IdGen{}
}

// NewDocID returns an opaque identifier unique within the process
// lifetime. Callers must treat the result as opaque per spec §4.A.
func (g *IdGen) NewDocID() string {
	id := uuid.Must(uuid.NewV4())
	return hex.EncodeToString(id.Bytes())
}

// NewRev produces a "{generation}-{hash}" revision token. hash is at
// least 32 hex characters, derived from generation, priorHash, the
// generator's internal counter, and a random nonce; only the
// "{generation}-" prefix is reproducible from the arguments.
func (g *IdGen) NewRev(generation int, priorHash string) string {
	counter := atomic.AddUint64(&g.counter, 1)
	nonce := uuid.Must(uuid.NewV4())

	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors on an oversized key, which we never
		// pass; a panic here would indicate a broken Go toolchain.
		panic(err)
	}
	fmt.Fprintf(h, "%d:%s:%d:", generation, priorHash, counter)
	h.Write(nonce.Bytes())
	sum := h.Sum(nil)

	return fmt.Sprintf("%d-%s", generation, hex.EncodeToString(sum))
}

// NewUpdateSeq returns a fresh 138-character opaque token, refreshed on
// every mutation per spec §3/§4.C.
func (g *IdGen) NewUpdateSeq() string {
	counter := atomic.AddUint64(&g.counter, 1)
	a := uuid.Must(uuid.NewV4())
	b := uuid.Must(uuid.NewV4())
	c := uuid.Must(uuid.NewV4())

	seq := fmt.Sprintf("%016x-%s-%s-%s", counter, hex.EncodeToString(a.Bytes()), hex.EncodeToString(b.Bytes()), hex.EncodeToString(c.Bytes()))
	return padOrTrim(seq, 138)
}

func padOrTrim(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	for len(s) < n {
		s += "0"
	}
	return s
}
