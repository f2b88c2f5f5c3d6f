package synth

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolioData/internal/models"
)

var idPattern = regexp.MustCompile(`^\d{2}$`)

func TestGenerateShape(t *testing.T) {
	records := Generate(DefaultCount, nil)
	require.Len(t, records, 30)

	for i, r := range records {
		assert.Equal(t, fmt.Sprintf("%02d", i+1), r.ID)
		assert.Regexp(t, idPattern, r.ID)
		assert.Equal(t, strings.ToUpper(r.Title), r.Title)
		assert.Equal(t, strings.ToUpper(r.Type), r.Type)
		assert.Contains(t, Years, r.Year)
		assert.NotNil(t, r.Assets)
		assert.Empty(t, r.Assets)
		assert.Regexp(t, `^CLIENT [1-9]\d{2}$`, r.Client)
	}
}

func TestGenerateFirstRecord(t *testing.T) {
	r := Generate(1, NewRand(7))[0]

	assert.Equal(t, "01", r.ID)
	assert.Equal(t, "STRUCTURE OF VOID", r.Title)
	assert.Contains(t, r.Description, "structure of void")
}

func TestGenerateOverflowTitle(t *testing.T) {
	records := Generate(31, NewRand(1))
	require.Len(t, records, 31)

	assert.Equal(t, "31", records[30].ID)
	assert.Equal(t, "UNTITLED 31", records[30].Title)
	assert.Contains(t, records[30].Description, "untitled 31")
}

func TestTypesAreKnownCategories(t *testing.T) {
	known := map[string]bool{}
	for _, ty := range Types {
		known[strings.ToUpper(ty)] = true
	}
	for _, r := range Generate(200, NewRand(3)) {
		assert.True(t, known[r.Type], "unexpected type %q", r.Type)
	}
}

func TestSeededRunsAreReproducible(t *testing.T) {
	a := NewSynthesizer(DefaultCount, 42).Run()
	b := NewSynthesizer(DefaultCount, 42).Run()

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("seeded runs differ (-a +b):\n%s", diff)
	}
}

func TestRunKeepsIDMultiset(t *testing.T) {
	records := NewSynthesizer(DefaultCount, 0).Run()
	require.Len(t, records, 30)

	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	sort.Strings(ids)

	want := make([]string, 0, 30)
	for i := 1; i <= 30; i++ {
		want = append(want, fmt.Sprintf("%02d", i))
	}
	assert.Equal(t, want, ids)
}

func TestSortOrder(t *testing.T) {
	records := []models.Record{
		{ID: "01", Year: "2021"},
		{ID: "02", Year: "2024"},
		{ID: "03", Year: "2023"},
		{ID: "04", Year: "2024"},
		{ID: "05", Year: "2021"},
	}
	Sort(records)

	var got []string
	for _, r := range records {
		got = append(got, r.Year+"/"+r.ID)
	}
	assert.Equal(t, []string{"2024/04", "2024/02", "2023/03", "2021/05", "2021/01"}, got)
	assert.True(t, IsSorted(records))
}

func TestSortYearDominatesID(t *testing.T) {
	records := []models.Record{
		{ID: "30", Year: "2023"},
		{ID: "01", Year: "2024"},
	}
	Sort(records)

	assert.Equal(t, "2024", records[0].Year)
	assert.Equal(t, "2023", records[1].Year)
}

func TestSortIsStable(t *testing.T) {
	records := []models.Record{
		{ID: "01", Year: "2022", Client: "first"},
		{ID: "01", Year: "2022", Client: "second"},
		{ID: "02", Year: "2022", Client: "third"},
	}
	Sort(records)

	assert.Equal(t, "third", records[0].Client)
	assert.Equal(t, "first", records[1].Client)
	assert.Equal(t, "second", records[2].Client)
}

func TestRunIsSorted(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		records := NewSynthesizer(DefaultCount, seed).Run()
		for i := 1; i < len(records); i++ {
			a, b := records[i-1], records[i]
			assert.False(t, Less(b, a), "seed %d: %s/%s before %s/%s", seed, a.Year, a.ID, b.Year, b.ID)
		}
	}
}

func TestNewSynthesizerDefaultsCount(t *testing.T) {
	assert.Len(t, NewSynthesizer(0, 5).Run(), DefaultCount)
}
