package cache

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"
)

// ErrTruncated is returned when a stream ends inside a record.
var ErrTruncated = errors.New("cache record truncated")

const idSize = 16

// Contents is the decoded form of a cache pair.
type Contents struct {
	// Names is the name -> identifier mapping of usermap.bin.
	Names *identity.NameIndex

	// IDs is the raw identifier set of uuids.bin.
	IDs *identity.Set
}

// NewContents returns empty Contents.
func NewContents() *Contents {
	return &Contents{
		Names: identity.NewNameIndex(),
		IDs:   identity.NewSet(),
	}
}

// EncodeNames writes every entry of names to w, oldest first.
func EncodeNames(w io.Writer, names *identity.NameIndex) error {
	bw := bufio.NewWriter(w)
	var err error
	names.Each(func(name string, id identity.ID) {
		if err != nil {
			return
		}
		err = writeName(bw, name)
		if err == nil {
			err = writeID(bw, id)
		}
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeIDs writes every identifier of ids to w, oldest first.
func EncodeIDs(w io.Writer, ids *identity.Set) error {
	bw := bufio.NewWriter(w)
	var err error
	ids.Each(func(id identity.ID) {
		if err == nil {
			err = writeID(bw, id)
		}
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// DecodeNames reads name records from r until end of stream. A repeated name
// overwrites the earlier mapping and emits KindReplacedDuringLoad.
func DecodeNames(r io.Reader, source string, sink report.Sink) (*identity.NameIndex, error) {
	sink = report.OrDiscard(sink)
	br := bufio.NewReader(r)
	names := identity.NewNameIndex()

	for record := 0; ; record++ {
		name, err := readName(br)
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read name of record %d: %w", record, err)
		}

		id, err := readID(br)
		if err == io.EOF {
			err = ErrTruncated
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read uuid of record %d (%q): %w", record, name, err)
		}

		if prev, replaced := names.Set(name, id); replaced {
			sink.Emit(report.Event{
				Kind:   report.KindReplacedDuringLoad,
				Name:   name,
				Old:    prev,
				New:    id,
				Source: source,
			})
		}
	}
}

// DecodeIDs reads identifier records from r until end of stream. A repeated
// identifier emits KindDuplicateCacheEntry and is otherwise ignored.
func DecodeIDs(r io.Reader, source string, sink report.Sink) (*identity.Set, error) {
	sink = report.OrDiscard(sink)
	br := bufio.NewReader(r)
	ids := identity.NewSet()

	for record := 0; ; record++ {
		id, err := readID(br)
		if err == io.EOF {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read uuid of record %d: %w", record, err)
		}

		if !ids.Add(id) {
			sink.Emit(report.Event{
				Kind:   report.KindDuplicateCacheEntry,
				New:    id,
				Source: source,
			})
		}
	}
}

func writeName(w io.Writer, name string) error {
	encoded, err := encodeModifiedUTF8(name)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", name, err)
	}
	var prefix [2]byte
	binary.BigEndian.PutUint16(prefix[:], uint16(len(encoded)))
	if _, err := w.Write(prefix[:]); err != nil {
		return err
	}
	_, err = w.Write(encoded)
	return err
}

func writeID(w io.Writer, id identity.ID) error {
	var buf [idSize]byte
	msb, lsb := id.Halves()
	binary.BigEndian.PutUint64(buf[:8], msb)
	binary.BigEndian.PutUint64(buf[8:], lsb)
	_, err := w.Write(buf[:])
	return err
}

// readName returns io.EOF only when the stream ends cleanly before a record.
func readName(r io.Reader) (string, error) {
	var prefix [2]byte
	if _, err := io.ReadFull(r, prefix[:]); err != nil {
		return "", truncated(err)
	}
	buf := make([]byte, binary.BigEndian.Uint16(prefix[:]))
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return "", truncated(err)
	}
	return decodeModifiedUTF8(buf)
}

// readID returns io.EOF only when the stream ends cleanly before a record.
func readID(r io.Reader) (identity.ID, error) {
	var buf [idSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return identity.Nil, truncated(err)
	}
	return identity.FromHalves(binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:])), nil
}

// truncated maps io.ErrUnexpectedEOF to ErrTruncated and passes other errors through.
func truncated(err error) error {
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
