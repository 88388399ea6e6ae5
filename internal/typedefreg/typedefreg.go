// Package typedefreg implements the typedef registry of spec §6.3: a
// name → AST map populated only by successful typedef/using commands,
// with rollback of entries a failed command inserted along the way.
//
// It follows the same "name → record" shape as the teacher's
// internal/ast.Scope (a map[string]ScopeMember keyed by identifier) and the
// validator's structTypes/aliasTypes caches
// (internal/validator/validator.go), generalized from WGSL's struct/alias
// split into one record kind covering both typedef and using.
package typedefreg

import (
	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/sname"
)

// DeclFlags distinguishes the declaration form that produced a record, per
// R4: a typedef and an equivalent using alias must round-trip through the
// registry and compare equal regardless of which form declared them.
type DeclFlags uint8

const (
	DeclTypedef DeclFlags = iota
	DeclUsing
)

// Record is one entry in the registry: the scoped name it was declared
// under, the arena that owns its AST, the AST's root id, and which
// declaration form produced it.
type Record struct {
	SName *sname.SName
	Arena *ast.Arena
	Root  ast.ID
	Flags DeclFlags
}

// entry bundles a Record with the insertion generation it was added at, so
// Rollback can undo exactly the entries a failed command added.
type entry struct {
	rec Record
	gen uint64
}

// Registry is the typedef registry: by-name and by-scoped-name lookup over
// every typedef/using declared so far, with rollback support for commands
// that fail after having inserted entries (spec §5: "entries inserted
// during a failed command must be rolled back").
type Registry struct {
	byLocal map[string][]*entry
	gen     uint64
}

// New returns an empty typedef registry.
func New() *Registry {
	return &Registry{byLocal: make(map[string][]*entry)}
}

// Begin starts a new command generation; entries added after Begin can be
// undone in one Rollback call.
func (r *Registry) Begin() {
	r.gen++
}

// Add inserts rec, or returns the previously-equal existing record if one
// with the same scoped name and a structurally equal AST already exists,
// per §6.3's "inserted | existing" result.
func (r *Registry) Add(rec Record) (result Record, inserted bool) {
	key := rec.SName.Local()
	for _, e := range r.byLocal[key] {
		if e.rec.SName.Equal(rec.SName) && Equal(e.rec.Arena, e.rec.Root, rec.Arena, rec.Root) {
			return e.rec, false
		}
	}
	r.byLocal[key] = append(r.byLocal[key], &entry{rec: rec, gen: r.gen})
	return rec, true
}

// FindName returns the most recently declared record whose scoped name's
// local (innermost) identifier is name, or nil.
func (r *Registry) FindName(name string) *Record {
	entries := r.byLocal[name]
	if len(entries) == 0 {
		return nil
	}
	return &entries[len(entries)-1].rec
}

// FindSName returns the record whose scoped name exactly matches sn, or nil.
func (r *Registry) FindSName(sn *sname.SName) *Record {
	for _, e := range r.byLocal[sn.Local()] {
		if e.rec.SName.Equal(sn) {
			return &e.rec
		}
	}
	return nil
}

// Rollback removes every entry added in the current generation (i.e. since
// the last Begin), then starts a fresh generation — used when a command's
// check phase fails after typedef/using had already inserted entries.
func (r *Registry) Rollback() {
	for key, entries := range r.byLocal {
		kept := entries[:0]
		for _, e := range entries {
			if e.gen != r.gen {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			delete(r.byLocal, key)
		} else {
			r.byLocal[key] = kept
		}
	}
	r.gen++
}

// Commit simply advances the generation counter without discarding
// anything, closing out a successful command so its entries survive any
// future Rollback.
func (r *Registry) Commit() {
	r.gen++
}

// Len returns the total number of distinct records across all names.
func (r *Registry) Len() int {
	n := 0
	for _, entries := range r.byLocal {
		n += len(entries)
	}
	return n
}

// Names returns every distinct local name currently registered, in no
// particular order — candidate fodder for the did-you-mean suggester of
// §4.I when an identifier resolves to neither a keyword nor a typedef.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byLocal))
	for key, entries := range r.byLocal {
		if len(entries) > 0 {
			names = append(names, key)
		}
	}
	return names
}
