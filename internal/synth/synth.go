package synth

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"portfolioData/internal/models"
)

// DefaultCount is the number of records produced by a plain run.
const DefaultCount = 30

var Titles = []string{
	"Structure of Void", "Linear Flow", "Echo 2024", "Silent Grid",
	"Analog Noise", "Digital Breath", "Horizon Zero", "Vertical Time",
	"White Noise", "Carbon Cycle", "Gravity Well", "Kinetic Type",
	"Mono Space", "Fluid Geometry", "Abstract Logic", "Neural Dust",
	"Static Motion", "Prime Chaos", "Binary Soul", "Glass Garden",
	"Neon Shadow", "Paper Architecture", "Liquid Metal", "Quantum Dot",
	"Velvet Friction", "Ceramic Sky", "Rust & Bone", "Pixel Rain",
	"Data Fog", "Memory Lane",
}

var Types = []string{"Interactive", "Identity", "Installation", "Web", "Mobile", "Exhibition"}

var Years = []string{"2024", "2023", "2022", "2021"}

// Source is the subset of *rand.Rand used for sampling.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewRand returns a deterministic source for seed, or the unseeded
// package-level source when seed is 0.
func NewRand(seed uint64) Source {
	if seed == 0 {
		return globalSource{}
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// Title returns the title for the 1-based index i.
func Title(i int) string {
	if i-1 < len(Titles) {
		return Titles[i-1]
	}
	return fmt.Sprintf("Untitled %d", i)
}

func Description(title string) string {
	return fmt.Sprintf("Exploring the relationship between %s and user interaction. A study in minimal aesthetics.",
		strings.ToLower(title))
}

// Generate builds count records in ascending id order.
func Generate(count int, src Source) []models.Record {
	if src == nil {
		src = globalSource{}
	}

	records := make([]models.Record, 0, count)
	for i := 1; i <= count; i++ {
		title := Title(i)
		year := Years[src.IntN(len(Years))]
		pType := Types[src.IntN(len(Types))]
		client := 100 + src.IntN(900)

		records = append(records, models.Record{
			ID:          fmt.Sprintf("%02d", i),
			Title:       strings.ToUpper(title),
			Year:        year,
			Client:      fmt.Sprintf("CLIENT %d", client),
			Type:        strings.ToUpper(pType),
			Description: Description(title),
			Assets:      []string{},
		})
	}
	return records
}

// Less reports whether a sorts after b, i.e. the (year, id) tuple of a is
// greater. Both parts compare as strings.
func Less(a, b models.Record) bool {
	if a.Year != b.Year {
		return a.Year > b.Year
	}
	return a.ID > b.ID
}

// Sort orders records by year then id, both descending.
func Sort(records []models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return Less(records[i], records[j])
	})
}

// IsSorted reports whether records are in persisted order.
func IsSorted(records []models.Record) bool {
	return sort.SliceIsSorted(records, func(i, j int) bool {
		return Less(records[i], records[j])
	})
}

type Synthesizer struct {
	count int
	src   Source
}

func NewSynthesizer(count int, seed uint64) *Synthesizer {
	if count <= 0 {
		count = DefaultCount
	}
	return &Synthesizer{count: count, src: NewRand(seed)}
}

// Run generates and sorts a full dataset.
func (s *Synthesizer) Run() []models.Record {
	records := Generate(s.count, s.src)
	Sort(records)
	return records
}
