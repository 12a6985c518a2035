package phenotype_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/adapters/phenotype"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func referenceOntology(t *testing.T) *domain.Ontology {
	t.Helper()

	b := domain.NewOntologyBuilder()
	for _, term := range []domain.Term{
		"HP:0000001", "HP:0000118", "HP:0000924", "HP:0000707", "HP:0002011",
	} {
		require.NoError(t, b.AddTerm(term))
	}
	for _, edge := range [][2]domain.Term{
		{"HP:0000118", "HP:0000001"},
		{"HP:0000924", "HP:0000118"},
		{"HP:0000707", "HP:0000118"},
		{"HP:0002011", "HP:0000707"},
	} {
		require.NoError(t, b.AddIsA(edge[0], edge[1]))
	}
	require.NoError(t, b.AddAlternate("HP:0100001", "HP:0000118"))

	ont, err := b.Build()
	require.NoError(t, err)
	return ont
}

func newLoader(t *testing.T) *phenotype.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return phenotype.NewLoader(fs.NewOpener(), mockLogger)
}

func writePhenotypes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "phenotypes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writePhenotypes(t, `{
  "person_01": ["HP:0000924"],
  "person_02": ["HP:0000118", "HP:0002011"],
  "person_03": ["HP:0000707", "HP:0002011", "HP:0002011"]
}`)

	pop, err := newLoader(t).Load(path, referenceOntology(t))
	require.NoError(t, err)

	require.Len(t, pop, 3)
	assert.Equal(t, domain.NewTermSet("HP:0000924"), pop["person_01"])
	assert.Equal(t, domain.NewTermSet("HP:0000118", "HP:0002011"), pop["person_02"])
	// Duplicate annotations collapse.
	assert.Equal(t, domain.NewTermSet("HP:0000707", "HP:0002011"), pop["person_03"])
}

func TestLoader_Load_ResolvesAlternateIDs(t *testing.T) {
	path := writePhenotypes(t, `{"person_01": ["HP:0100001"]}`)

	pop, err := newLoader(t).Load(path, referenceOntology(t))
	require.NoError(t, err)

	assert.Equal(t, domain.NewTermSet("HP:0000118"), pop["person_01"])
}

func TestLoader_Load_DropsUnannotatedProbands(t *testing.T) {
	path := writePhenotypes(t, `{
  "person_01": ["HP:0000924"],
  "person_02": []
}`)

	pop, err := newLoader(t).Load(path, referenceOntology(t))
	require.NoError(t, err)

	require.Len(t, pop, 1)
	_, ok := pop["person_02"]
	assert.False(t, ok)
}

func TestLoader_Load_KeepsUnknownTerms(t *testing.T) {
	path := writePhenotypes(t, `{"person_01": ["HP:0000924", "HP:0499999"]}`)

	pop, err := newLoader(t).Load(path, referenceOntology(t))
	require.NoError(t, err)

	assert.Equal(t, domain.NewTermSet("HP:0000924", "HP:0499999"), pop["person_01"])
}

func TestLoader_Load_Bzipped(t *testing.T) {
	payload := `{"person_01": ["HP:0000924"]}`
	path := filepath.Join(t.TempDir(), "phenotypes.json.bz2")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw, err := bzip2.NewWriter(f, new(bzip2.WriterConfig))
	require.NoError(t, err)
	_, err = zw.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	pop, err := newLoader(t).Load(path, referenceOntology(t))
	require.NoError(t, err)
	require.Len(t, pop, 1)
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	path := writePhenotypes(t, `{"person_01": "not a list"}`)

	_, err := newLoader(t).Load(path, referenceOntology(t))
	require.Error(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.json"), referenceOntology(t))
	require.Error(t, err)
}
