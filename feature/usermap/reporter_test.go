package usermap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"usermap-reconciler/core/identity"
	"usermap-reconciler/core/reconcile"
	"usermap-reconciler/core/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var (
	idBob   = identity.MustParse("bbbbbbbb-0000-4000-8000-000000000002")
	idAlice = identity.MustParse("aaaaaaaa-0000-4000-8000-000000000001")
)

func buildResult(t *testing.T) *Result {
	t.Helper()
	r := reconcile.New(nil)
	r.IngestAll([]reconcile.Observation{
		{ID: idBob, Name: "bob", LastSeen: 200},
		{ID: idAlice, Name: "alice", LastSeen: 100},
	})
	snap := r.Snapshot()
	summary := r.Summary()
	return &Result{
		Mode:      ModeBuild,
		Names:     snap.Names,
		IDs:       snap.KnownIDs(),
		Seen:      snap.Seen,
		Reconcile: &summary,
		Events:    []report.Event{{Kind: report.KindInvalidName, Name: "Bob"}},
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, buildResult(t))

	out := buf.String()
	assert.Contains(t, out, "Usermap (build)")
	assert.Contains(t, out, "bob => bbbbbbbb-0000-4000-8000-000000000002\n")
	assert.Contains(t, out, "alice => aaaaaaaa-0000-4000-8000-000000000001\n")
	assert.Contains(t, out, "Total Users in Name => UUID Cache: 2\n")
	assert.Contains(t, out, "Total Users in Known UUID Cache: 2\n")
	assert.Contains(t, out, "Warnings: 1")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("bob =>")), bytes.Index(buf.Bytes(), []byte("alice =>")))
}

func TestEntries(t *testing.T) {
	entries := buildResult(t).Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Name)
	require.NotNil(t, entries[0].LastSeen)
	assert.Equal(t, int64(200), *entries[0].LastSeen)

	dump := &Result{Mode: ModeDump, Names: identity.NewNameIndex(), IDs: identity.NewSet()}
	dump.Names.Set("carol", idAlice)
	assert.Nil(t, dump.Entries()[0].LastSeen)
}

func TestLogSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	LogSummary(zap.New(core), buildResult(t))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "build", fields["mode"])
	assert.EqualValues(t, 2, fields["names"])
	assert.EqualValues(t, 2, fields["inserted"])
}

func TestNewJSONReport(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rep := NewJSONReport(buildResult(t), now)

	assert.Equal(t, "2026-01-02T03:04:05Z", rep.GeneratedAt)
	assert.Equal(t, []identity.ID{idBob, idAlice}, rep.KnownUUIDs)
	assert.Equal(t, 2, rep.Summary.Names)

	empty := &Result{Mode: ModeDump, Names: identity.NewNameIndex(), IDs: identity.NewSet()}
	data, err := json.Marshal(NewJSONReport(empty, now))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"events":[]`)
	assert.Contains(t, string(data), `"usermap":[]`)
}

func TestSaveJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, SaveJSON(path, buildResult(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Mode    string `json:"mode"`
		Usermap []struct {
			Name     string `json:"name"`
			UUID     string `json:"uuid"`
			LastSeen int64  `json:"last_seen"`
		} `json:"usermap"`
		Events []report.Event `json:"events"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "build", got.Mode)
	require.Len(t, got.Usermap, 2)
	assert.Equal(t, "bob", got.Usermap[0].Name)
	assert.Equal(t, idBob.String(), got.Usermap[0].UUID)
	assert.Equal(t, int64(200), got.Usermap[0].LastSeen)
	require.Len(t, got.Events, 1)
	assert.Equal(t, report.KindInvalidName, got.Events[0].Kind)
}

func TestSaveJSON_BadPath(t *testing.T) {
	err := SaveJSON(filepath.Join(t.TempDir(), "missing", "report.json"), buildResult(t))
	assert.Error(t, err)
}
