package cache

import (
	"bytes"
	"encoding/binary"
	"testing"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	idAlice = identity.MustParse("11111111-1111-4111-8111-111111111111")
	idBob   = identity.MustParse("22222222-2222-4222-8222-222222222222")
	idCarol = identity.MustParse("33333333-3333-3333-8333-333333333333")
)

// nameRecord builds a usermap.bin record for an ASCII name.
func nameRecord(name string, id identity.ID) []byte {
	var b []byte
	b = binary.BigEndian.AppendUint16(b, uint16(len(name)))
	b = append(b, name...)
	return append(b, idRecord(id)...)
}

func idRecord(id identity.ID) []byte {
	msb, lsb := id.Halves()
	b := binary.BigEndian.AppendUint64(nil, msb)
	return binary.BigEndian.AppendUint64(b, lsb)
}

func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func TestDecodeNames(t *testing.T) {
	data := concat(nameRecord("alice", idAlice), nameRecord("bob", idBob))
	log := report.NewLog()

	names, err := DecodeNames(bytes.NewReader(data), "usermap.bin", log)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, names.Names())
	got, _ := names.Get("bob")
	assert.Equal(t, idBob, got)
	assert.Empty(t, log.Events())
}

func TestDecodeNames_ReplacedDuringLoad(t *testing.T) {
	data := concat(nameRecord("alice", idAlice), nameRecord("alice", idCarol))
	log := report.NewLog()

	names, err := DecodeNames(bytes.NewReader(data), "usermap.bin", log)
	require.NoError(t, err)

	// last write wins even though the later identifier has a lower version
	got, ok := names.Get("alice")
	require.True(t, ok)
	assert.Equal(t, idCarol, got)
	assert.Equal(t, 1, names.Len())

	require.Len(t, log.Events(), 1)
	ev := log.Events()[0]
	assert.Equal(t, report.KindReplacedDuringLoad, ev.Kind)
	assert.Equal(t, "alice", ev.Name)
	assert.Equal(t, idAlice, ev.Old)
	assert.Equal(t, idCarol, ev.New)
	assert.Equal(t, "usermap.bin", ev.Source)
}

func TestDecodeIDs_Duplicate(t *testing.T) {
	data := concat(idRecord(idAlice), idRecord(idBob), idRecord(idAlice))
	log := report.NewLog()

	ids, err := DecodeIDs(bytes.NewReader(data), "uuids.bin", log)
	require.NoError(t, err)
	assert.Equal(t, []identity.ID{idAlice, idBob}, ids.Slice())
	require.Len(t, log.Events(), 1)
	assert.Equal(t, report.KindDuplicateCacheEntry, log.Events()[0].Kind)
	assert.Equal(t, idAlice, log.Events()[0].New)
}

func TestDecode_Empty(t *testing.T) {
	log := report.NewLog()

	names, err := DecodeNames(bytes.NewReader(nil), "usermap.bin", log)
	require.NoError(t, err)
	assert.Equal(t, 0, names.Len())

	ids, err := DecodeIDs(bytes.NewReader(nil), "uuids.bin", log)
	require.NoError(t, err)
	assert.Equal(t, 0, ids.Len())

	assert.Empty(t, log.Events())
}

func TestDecode_Truncated(t *testing.T) {
	full := nameRecord("alice", idAlice)

	tests := []struct {
		name string
		data []byte
	}{
		{"HalfLengthPrefix", full[:1]},
		{"ShortName", full[:4]},
		{"NameWithoutUUID", full[:7]},
		{"HalfUUID", full[:15]},
		{"SecondRecordCut", concat(full, full[:10])},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeNames(bytes.NewReader(tt.data), "usermap.bin", nil)
			assert.ErrorIs(t, err, ErrTruncated)
		})
	}

	t.Run("IDs", func(t *testing.T) {
		data := concat(idRecord(idAlice), idRecord(idBob)[:9])
		_, err := DecodeIDs(bytes.NewReader(data), "uuids.bin", nil)
		assert.ErrorIs(t, err, ErrTruncated)
	})
}

func TestDecodeNames_MalformedName(t *testing.T) {
	data := []byte{0x00, 0x01, 0xFF}
	data = append(data, idRecord(idAlice)...)
	_, err := DecodeNames(bytes.NewReader(data), "usermap.bin", nil)
	assert.ErrorIs(t, err, ErrMalformedName)
}

func TestRoundTrip_ByteIdentical(t *testing.T) {
	usermap := concat(
		nameRecord("zed", idCarol),
		nameRecord("alice", idAlice),
		nameRecord("bob", idBob),
	)
	uuids := concat(idRecord(idBob), idRecord(idCarol), idRecord(idAlice))

	names, err := DecodeNames(bytes.NewReader(usermap), "usermap.bin", nil)
	require.NoError(t, err)
	ids, err := DecodeIDs(bytes.NewReader(uuids), "uuids.bin", nil)
	require.NoError(t, err)

	var gotNames, gotIDs bytes.Buffer
	require.NoError(t, EncodeNames(&gotNames, names))
	require.NoError(t, EncodeIDs(&gotIDs, ids))

	assert.Equal(t, usermap, gotNames.Bytes())
	assert.Equal(t, uuids, gotIDs.Bytes())
}

func TestEncodeNames_NonASCII(t *testing.T) {
	names := identity.NewNameIndex()
	names.Set("jöhn", idAlice)

	var buf bytes.Buffer
	require.NoError(t, EncodeNames(&buf, names))
	assert.Equal(t, []byte{0x00, 0x05, 'j', 0xC3, 0xB6, 'h', 'n'}, buf.Bytes()[:7])

	back, err := DecodeNames(&buf, "usermap.bin", nil)
	require.NoError(t, err)
	got, ok := back.Get("jöhn")
	assert.True(t, ok)
	assert.Equal(t, idAlice, got)
}
