package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolioData/internal/models"
	"portfolioData/internal/synth"
)

func TestPersistWritesIndentedJSON(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, zap.NewNop())

	records := []models.Record{{
		ID: "27", Title: "RUST & BONE", Year: "2022", Client: "CLIENT 300",
		Type: "WEB", Description: "rust & bone", Assets: []string{},
	}}

	path, err := svc.Persist(records, DefaultOutput)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := `[
  {
    "id": "27",
    "title": "RUST & BONE",
    "year": "2022",
    "client": "CLIENT 300",
    "type": "WEB",
    "description": "rust & bone",
    "assets": []
  }
]`
	assert.Equal(t, want, string(data))

	info, err := os.Stat(filepath.Join(dir, AssetsDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPersistIsIdempotentAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(strings.Repeat("x", 100000)), 0644))

	_, err := svc.Persist(synth.NewSynthesizer(30, 1).Run(), DefaultOutput)
	require.NoError(t, err)
	_, err = svc.Persist(synth.NewSynthesizer(30, 2).Run(), DefaultOutput)
	require.NoError(t, err)

	records, err := svc.Load(DefaultOutput)
	require.NoError(t, err)
	assert.NoError(t, Validate(records, 30))
}

func TestPersistUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil)

	_, err := svc.Persist(nil, filepath.Join("missing", "dir", "data.json"))
	assert.ErrorContains(t, err, "failed to write")
}

func TestPersistNilWritesEmptyArray(t *testing.T) {
	data, err := MarshalJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestTwoRunsShareSchema(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil)

	_, err := svc.Persist(synth.NewSynthesizer(30, 0).Run(), "a.json")
	require.NoError(t, err)
	_, err = svc.Persist(synth.NewSynthesizer(30, 0).Run(), "b.json")
	require.NoError(t, err)

	a, err := svc.Load("a.json")
	require.NoError(t, err)
	b, err := svc.Load("b.json")
	require.NoError(t, err)

	assert.Len(t, a, len(b))
	for i := range a {
		assert.Empty(t, a[i].Assets)
		assert.Empty(t, b[i].Assets)
	}
}

func TestExportAllFormatsLoadBack(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, zap.NewNop())
	records := synth.NewSynthesizer(30, 9).Run()

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			out := filepath.Join("exports", string(format))
			path, err := svc.Export(records, out, format)
			require.NoError(t, err)
			assert.Equal(t, "."+format.Extension(), filepath.Ext(path))
			require.NoError(t, svc.ValidateFile(path))

			loaded, err := svc.Load(path)
			require.NoError(t, err)
			if diff := cmp.Diff(records, loaded); diff != "" {
				t.Errorf("%s export changed records (-want +got):\n%s", format, diff)
			}
		})
	}
}

func TestExportInvalidFormat(t *testing.T) {
	svc := NewService(t.TempDir(), nil)
	_, err := svc.Export(nil, "out", Format("xml"))
	assert.ErrorContains(t, err, "invalid format")
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.json"), nil, 0644))
	assert.ErrorContains(t, svc.ValidateFile("empty.json"), "empty")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.txt"), []byte("x"), 0644))
	assert.ErrorContains(t, svc.ValidateFile("data.txt"), "cannot detect format")

	assert.Error(t, svc.ValidateFile("absent.json"))
}

func TestDecodeTruncatedBSON(t *testing.T) {
	_, err := Decode([]byte{0x10, 0, 0}, FormatBSON)
	assert.ErrorContains(t, err, "truncated")
}

func TestCreateExportFileNeverOverwrites(t *testing.T) {
	dir := t.TempDir()

	var names []string
	for i := 0; i < 3; i++ {
		file, target, err := createExportFile(dir, "20260101_120000", "json")
		require.NoError(t, err)
		require.NoError(t, file.Close())
		names = append(names, filepath.Base(target))
	}

	assert.Equal(t, []string{
		"data_20260101_120000.json",
		"data_20260101_120000_1.json",
		"data_20260101_120000_2.json",
	}, names)
}

func TestExportTwiceKeepsBothFiles(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, nil)
	records := synth.NewSynthesizer(30, 5).Run()

	first, err := svc.Export(records, "exports", FormatCSV)
	require.NoError(t, err)
	second, err := svc.Export(records, "exports", FormatCSV)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	for _, path := range []string{first, second} {
		loaded, err := svc.Load(path)
		require.NoError(t, err)
		assert.Len(t, loaded, 30)
	}
}
