package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMateriaMedica = `BELLADONNA
(Atropa belladonna, Deadly Nightshade)
Violent delirium, red face, throbbing carotids.
Sudden and violent onset of complaints.

BRYONIA ALBA
Worse from any motion.
Dryness of all mucous membranes.

NUX VOMICA
Irritability after overwork and stimulants.
`

func TestHeadingSplitter_Split(t *testing.T) {
	splitter := NewHeadingSplitter(DefaultConfig())

	chunks, err := splitter.Split(strings.NewReader(sampleMateriaMedica))

	require.NoError(t, err)
	require.Len(t, chunks, 3)

	assert.Equal(t, "chunk_0", chunks[0].ID)
	assert.Equal(t, "Belladonna", chunks[0].RemedyName)
	assert.Equal(t, "Atropa belladonna, Deadly Nightshade", chunks[0].AlternativeNames)
	assert.Contains(t, chunks[0].FullText, "Violent delirium")
	assert.Contains(t, chunks[0].FullText, "Sudden and violent onset")
	assert.NotContains(t, chunks[0].FullText, "BRYONIA")

	assert.Equal(t, "chunk_1", chunks[1].ID)
	assert.Equal(t, "Bryonia Alba", chunks[1].RemedyName)
	assert.Empty(t, chunks[1].AlternativeNames)

	assert.Equal(t, "chunk_2", chunks[2].ID)
	assert.Equal(t, "Nux Vomica", chunks[2].RemedyName)
}

func TestHeadingSplitter_Split_Deterministic(t *testing.T) {
	splitter := NewHeadingSplitter(DefaultConfig())

	first, err := splitter.Split(strings.NewReader(sampleMateriaMedica))
	require.NoError(t, err)

	second, err := splitter.Split(strings.NewReader(sampleMateriaMedica))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHeadingSplitter_Split_SkipsEmptyEntries(t *testing.T) {
	input := `ACONITE
Sudden fear and restlessness.

EMPTY REMEDY

SULPHUR
Burning everywhere, worse from warmth of bed.
`
	splitter := NewHeadingSplitter(DefaultConfig())

	chunks, err := splitter.Split(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Aconite", chunks[0].RemedyName)
	// The skipped entry still consumes an ordinal
	assert.Equal(t, "chunk_2", chunks[1].ID)
	assert.Equal(t, "Sulphur", chunks[1].RemedyName)
}

func TestHeadingSplitter_Split_AltNamesAfterBlankLine(t *testing.T) {
	input := `BELLADONNA

(Atropa belladonna)
Violent delirium, red face.
`
	splitter := NewHeadingSplitter(DefaultConfig())

	chunks, err := splitter.Split(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Atropa belladonna", chunks[0].AlternativeNames)
	assert.Equal(t, "Violent delirium, red face.", chunks[0].FullText)
}

func TestHeadingSplitter_Split_IgnoresPreamble(t *testing.T) {
	input := `Materia Medica, third edition.
Front matter that precedes the first remedy.

ARNICA MONTANA
Bruised soreness after injury.
`
	splitter := NewHeadingSplitter(DefaultConfig())

	chunks, err := splitter.Split(strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Arnica Montana", chunks[0].RemedyName)
	assert.NotContains(t, chunks[0].FullText, "Front matter")
}

func TestHeadingSplitter_Split_Empty(t *testing.T) {
	splitter := NewHeadingSplitter(DefaultConfig())

	chunks, err := splitter.Split(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"BELLADONNA", true},
		{"BRYONIA ALBA", true},
		{"NUX-VOMICA", true},
		{"ST. JOHN'S WORT", true},
		{"Belladonna", false},
		{"BELLADONNA causes delirium", false},
		{"42", false},
		{"A", false},
		{"", false},
		{"(Atropa belladonna)", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, isHeading(tt.line))
		})
	}
}

func TestForSource(t *testing.T) {
	cfg := DefaultConfig()

	assert.IsType(t, &JSONSplitter{}, ForSource("data/remedy_chunks.json", cfg))
	assert.IsType(t, &JSONSplitter{}, ForSource("corpus/CHUNKS.JSON", cfg))
	assert.IsType(t, &HeadingSplitter{}, ForSource("data/materia_medica.txt", cfg))
	assert.IsType(t, &HeadingSplitter{}, ForSource("corpus", cfg))
}
