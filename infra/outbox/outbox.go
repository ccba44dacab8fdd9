// Package outbox is the durable staging area between the engine and the
// broadcaster. Every publish writes an event here first; a background
// job drains it to Kafka and records delivery state, so events survive
// crashes and broker outages.
package outbox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Attempts    uint32
	LastAttempt int64
	Payload     []byte
}

// binary encoding: [state:1][attempts:4][lastAttempt:8][len:2][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 1+4+8+2+len(r.Payload))
	buf[0] = byte(r.State)
	binary.LittleEndian.PutUint32(buf[1:5], r.Attempts)
	binary.LittleEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.LittleEndian.PutUint16(buf[13:15], uint16(len(r.Payload)))
	copy(buf[15:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 15 {
		return Record{}, errors.New("outbox: record too short")
	}
	n := int(binary.LittleEndian.Uint16(b[13:15]))
	if len(b) != 15+n {
		return Record{}, errors.New("outbox: record length mismatch")
	}
	return Record{
		State:       State(b[0]),
		Attempts:    binary.LittleEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.LittleEndian.Uint64(b[5:13])),
		Payload:     append([]byte(nil), b[15:]...),
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// MaxPayload is the largest event body a record can carry; the on-disk
// length field is 16 bits.
const MaxPayload = 1<<16 - 1

// ErrPayloadTooLarge is returned by PutNew for bodies over MaxPayload.
var ErrPayloadTooLarge = errors.New("outbox: payload exceeds 64 KiB")

// PutNew stages an event for broadcast (called by the engine at publish
// time).
func (o *Outbox) PutNew(seq uint64, payload []byte) error {
	if len(payload) > MaxPayload {
		return ErrPayloadTooLarge
	}
	rec := Record{
		State:   StateNew,
		Payload: payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent flips a record to SENT just before the broker call.
func (o *Outbox) MarkSent(seq uint64) error {
	return o.transition(seq, StateSent, true)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(seq uint64) error {
	return o.transition(seq, StateAcked, false)
}

// MarkFailed records a delivery failure; the broadcaster retries it on
// a later pass.
func (o *Outbox) MarkFailed(seq uint64) error {
	return o.transition(seq, StateFailed, false)
}

func (o *Outbox) transition(seq uint64, to State, bumpAttempts bool) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = to
	rec.LastAttempt = time.Now().UnixNano()
	if bumpAttempts {
		rec.Attempts++
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Delete removes a record outright.
func (o *Outbox) Delete(seq uint64) error {
	return o.db.Delete(keyFor(seq), pebble.Sync)
}

// Get returns the record for one publish.
func (o *Outbox) Get(seq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	rec, err := decodeRecord(val)
	if err != nil {
		return Record{}, err
	}
	rec.Seq = seq
	return rec, nil
}

// -------------------- Scan --------------------

// ScanByState iterates all records in the given state, in seq order.
// This is used by the broadcaster.
func (o *Outbox) ScanByState(state State, fn func(Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != state {
			continue
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec.Seq = seq

		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo removes ACKED records with seq <= max. Called by
// the capture job after a successful capture.
func (o *Outbox) TruncateAckedUpTo(max uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(keyPrefix),
		UpperBound: []byte(keyPrefix + "~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateAcked {
			continue
		}
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if seq <= max {
			if err := o.db.Delete(append([]byte(nil), iter.Key()...), pebble.Sync); err != nil {
				return err
			}
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

const keyPrefix = "publish/"

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", keyPrefix, seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte(keyPrefix))), "%d", &seq)
	return seq, err
}
