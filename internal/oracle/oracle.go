// Package oracle persists the retrograde solver's won/lost labels in a
// BadgerDB keyed by canonical board, and exposes the lookup the online
// engine uses for its pre-search shortcut (§4.J, §4.K).
package oracle

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/nickprbs/muehlespiel/internal/boardpkg"
	"github.com/nickprbs/muehlespiel/internal/symmetry"
)

// Label is the retrograde solver's verdict for the side to move on a
// stored canonical board.
type Label uint8

const (
	Lost Label = iota
	Won
)

// Oracle wraps a BadgerDB holding canonical-board -> (label, distance)
// entries. Boards are expected to already be canonical representatives:
// Put and Lookup store and find the board exactly as given and never
// canonicalise it; callers build keys with CanonicalKey.
type Oracle struct {
	db *badger.DB
}

// Open opens (creating if absent) the oracle database at dir.
func Open(dir string) (*Oracle, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("oracle: open %s: %w", dir, err)
	}
	return &Oracle{db: db}, nil
}

// Close closes the underlying database.
func (o *Oracle) Close() error {
	return o.db.Close()
}

// Put records b's verdict. Distance must be non-negative.
func (o *Oracle) Put(b boardpkg.Board, label Label, distance int) error {
	key := encodeKey(b)
	val := encodeValue(label, distance)
	return o.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
}

// Lookup returns b's stored verdict, if any.
func (o *Oracle) Lookup(b boardpkg.Board) (label Label, distance int, found bool, err error) {
	key := encodeKey(b)
	err = o.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(key)
		if errors.Is(getErr, badger.ErrKeyNotFound) {
			return nil
		}
		if getErr != nil {
			return getErr
		}
		found = true
		return item.Value(func(val []byte) error {
			label, distance = decodeValue(val)
			return nil
		})
	})
	return label, distance, found, err
}

// CanonicalKey normalises (b, team) onto the White-to-move canonical
// representative the oracle stores and looks up by: Black-to-move
// positions are colour-inverted first, so every stored entry is a
// White-oriented canonical board regardless of which colour was actually
// to move (§3, §9 "killer-turn bypass orientation").
func CanonicalKey(b boardpkg.Board, team boardpkg.Team) boardpkg.Board {
	if team == boardpkg.Black {
		b = b.InvertTeams()
	}
	return symmetry.Representative(b)
}

// Batch accumulates writes for a bulk retrograde pass and flushes them
// together, avoiding one transaction per position.
type Batch struct {
	wb *badger.WriteBatch
}

// NewBatch starts a bulk write against the oracle.
func (o *Oracle) NewBatch() *Batch {
	return &Batch{wb: o.db.NewWriteBatch()}
}

// Put stages a write in the batch.
func (batch *Batch) Put(b boardpkg.Board, label Label, distance int) error {
	return batch.wb.Set(encodeKey(b), encodeValue(label, distance))
}

// Flush commits every staged write.
func (batch *Batch) Flush() error {
	return batch.wb.Flush()
}

// encodeKey packs the board's three ring words into a 6-byte big-endian
// key, matching the wire layout used everywhere else in this module.
func encodeKey(b boardpkg.Board) []byte {
	key := make([]byte, 6)
	binary.BigEndian.PutUint16(key[0:2], b.Outer)
	binary.BigEndian.PutUint16(key[2:4], b.Middle)
	binary.BigEndian.PutUint16(key[4:6], b.Inner)
	return key
}

func encodeValue(label Label, distance int) []byte {
	val := make([]byte, 5)
	val[0] = byte(label)
	binary.BigEndian.PutUint32(val[1:5], uint32(distance))
	return val
}

func decodeValue(val []byte) (Label, int) {
	return Label(val[0]), int(binary.BigEndian.Uint32(val[1:5]))
}
