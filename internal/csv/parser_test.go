package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioData/internal/models"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{ID: "02", Title: "LINEAR FLOW", Year: "2024", Client: "CLIENT 512", Type: "WEB", Description: "linear flow, with a comma", Assets: []string{}},
		{ID: "01", Title: "STRUCTURE OF VOID", Year: "2021", Client: "CLIENT 100", Type: "MOBILE", Description: "structure of void", Assets: []string{"a.png", "b.png"}},
	}
}

func TestEncodeWritesHeaderFirst(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,title,year,client,type,description,assets", lines[0])
	assert.Contains(t, lines[2], "a.png;b.png")
}

func TestEncodeEmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "id,title,year,client,type,description,assets\n", buf.String())
}

func TestDecodeReadsEncodedRecords(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleRecords()))

	records, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestDecodeEmptyAssetsIsEmptySlice(t *testing.T) {
	records, err := Decode(strings.NewReader("id,title,year,client,type,description,assets\n01,A,2024,CLIENT 100,WEB,a,\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotNil(t, records[0].Assets)
	assert.Empty(t, records[0].Assets)
}

func TestDecodeRejectsMissingHeader(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorContains(t, err, "failed to create CSV decoder")
}
