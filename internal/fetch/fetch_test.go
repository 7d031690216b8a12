package fetch

import (
	"archive/zip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Source
		wantErr bool
	}{
		{
			name: "full generator URL",
			url:  "https://www.wolframcloud.com/obj/raghu0891/fiftythree?n=1000&difficulty=easy&topic=Area",
			want: Source{Name: "fiftythree", Difficulty: "easy", Topic: "Area"},
		},
		{
			name: "percent encoded topic",
			url:  "https://example.com/sets/shapes?difficulty=medium&topic=Product%20of%20Prime%20Factors",
			want: Source{Name: "shapes", Difficulty: "medium", Topic: "Product_of_Prime_Factors"},
		},
		{
			name: "topic before difficulty",
			url:  "https://example.com/sets/shapes?topic=Symmetry&difficulty=difficult",
			want: Source{Name: "shapes", Difficulty: "difficult", Topic: "Symmetry"},
		},
		{
			name: "no query parameters",
			url:  "https://example.com/sets/shapes",
			want: Source{Name: "shapes"},
		},
		{
			name:    "no path",
			url:     "https://example.com",
			wantErr: true,
		},
		{
			name:    "trailing slash only",
			url:     "https://example.com/sets/",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSource(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_Filenames(t *testing.T) {
	tests := []struct {
		name        string
		src         Source
		wantSample  string
		wantArchive string
	}{
		{
			name:        "all parts",
			src:         Source{Name: "fiftythree", Difficulty: "easy", Topic: "Area"},
			wantSample:  "fiftythree_easy_Area_first_response.json",
			wantArchive: "fiftythree_easy_Area_remaining_responses.zip",
		},
		{
			name:        "empty parts skipped",
			src:         Source{Name: "shapes"},
			wantSample:  "shapes_first_response.json",
			wantArchive: "shapes_remaining_responses.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSample, tt.src.SampleFile())
			assert.Equal(t, tt.wantArchive, tt.src.ArchiveFile())
		})
	}
}

func questionSetServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch_WritesSampleAndArchive(t *testing.T) {
	body := `[{"question":"q1","answer":"A"},{"question":"q2","answer":"B"},{"question":"q3","answer":"C"}]`
	server := questionSetServer(t, http.StatusOK, body)

	dir := t.TempDir()
	f := New(server.Client(), nil)
	res, err := f.Fetch(context.Background(), server.URL+"/sets/fiftythree?difficulty=easy&topic=Area", dir)
	require.NoError(t, err)

	assert.Equal(t, Source{Name: "fiftythree", Difficulty: "easy", Topic: "Area"}, res.Source)
	assert.Equal(t, 3, res.Records)
	sum := sha256.Sum256([]byte(body))
	assert.Equal(t, hex.EncodeToString(sum[:]), res.Checksum)

	sample, err := os.ReadFile(res.SamplePath)
	require.NoError(t, err)
	var first map[string]string
	require.NoError(t, json.Unmarshal(sample, &first))
	assert.Equal(t, "q1", first["question"])

	remaining := readArchivedRecords(t, res.ArchivePath)
	require.Len(t, remaining, 2)
	assert.Equal(t, "q2", remaining[0]["question"])
	assert.Equal(t, "q3", remaining[1]["question"])
}

func TestFetch_SingleRecordSet(t *testing.T) {
	server := questionSetServer(t, http.StatusOK, `[{"question":"only"}]`)

	dir := t.TempDir()
	f := New(server.Client(), nil)
	res, err := f.Fetch(context.Background(), server.URL+"/sets/shapes", dir)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Records)
	remaining := readArchivedRecords(t, res.ArchivePath)
	assert.Empty(t, remaining)
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := questionSetServer(t, http.StatusServiceUnavailable, "busy")

	f := New(server.Client(), nil)
	_, err := f.Fetch(context.Background(), server.URL+"/sets/shapes", t.TempDir())
	require.Error(t, err)

	var statusErr *ErrBadStatus
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
}

func TestFetch_InvalidJSON(t *testing.T) {
	server := questionSetServer(t, http.StatusOK, "not json")

	f := New(server.Client(), nil)
	_, err := f.Fetch(context.Background(), server.URL+"/sets/shapes", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestFetch_EmptySet(t *testing.T) {
	server := questionSetServer(t, http.StatusOK, "[]")

	f := New(server.Client(), nil)
	_, err := f.Fetch(context.Background(), server.URL+"/sets/shapes", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty question set")
}

func TestFetch_CanceledContext(t *testing.T) {
	server := questionSetServer(t, http.StatusOK, `[{"question":"q1"}]`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := New(server.Client(), nil)
	_, err := f.Fetch(ctx, server.URL+"/sets/shapes", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func readArchivedRecords(t *testing.T, path string) []map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = zr.Close() }()

	require.Len(t, zr.File, 1)
	assert.Equal(t, "remaining_responses.json", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()

	var records []map[string]string
	require.NoError(t, json.NewDecoder(rc).Decode(&records))
	return records
}
