package variant_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/phenolab/hposim/internal/adapters/fs"
	"github.com/phenolab/hposim/internal/adapters/variant"
	"github.com/phenolab/hposim/internal/core/domain"
	"github.com/phenolab/hposim/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *variant.Loader {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	return variant.NewLoader(fs.NewOpener(), mockLogger)
}

func writeVariants(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "variants.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeVariants(t, "hgnc\tperson_id\tconsequence\n"+
		"ARID1B\tperson_01\tstop_gained\n"+
		"ARID1B\tperson_02\tmissense_variant\n"+
		"KMT2A\tperson_03\tframeshift_variant\n")

	groups, err := newLoader(t).Load(path)
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, []string{"person_01", "person_02"}, groups["ARID1B"])
	assert.Equal(t, []string{"person_03"}, groups["KMT2A"])
}

func TestLoader_Load_DeduplicatesProbands(t *testing.T) {
	// person_01 carries two qualifying variants in the same gene.
	path := writeVariants(t, "hgnc\tperson_id\n"+
		"ARID1B\tperson_01\n"+
		"ARID1B\tperson_01\n"+
		"ARID1B\tperson_02\n")

	groups, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"person_01", "person_02"}, groups["ARID1B"])
}

func TestLoader_Load_ColumnOrderIrrelevant(t *testing.T) {
	path := writeVariants(t, "chrom\tperson_id\thgnc\n"+
		"6\tperson_01\tARID1B\n")

	groups, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"person_01"}, groups["ARID1B"])
}

func TestLoader_Load_SkipsBlankFields(t *testing.T) {
	path := writeVariants(t, "hgnc\tperson_id\n"+
		"ARID1B\tperson_01\n"+
		"\tperson_02\n"+
		"KMT2A\t\n")

	groups, err := newLoader(t).Load(path)
	require.NoError(t, err)

	require.Len(t, groups, 1)
	assert.Equal(t, []string{"person_01"}, groups["ARID1B"])
}

func TestLoader_Load_MissingGeneColumn(t *testing.T) {
	path := writeVariants(t, "gene\tperson_id\nARID1B\tperson_01\n")

	_, err := newLoader(t).Load(path)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestLoader_Load_MissingProbandColumn(t *testing.T) {
	path := writeVariants(t, "hgnc\tsample\nARID1B\tperson_01\n")

	_, err := newLoader(t).Load(path)
	require.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestLoader_Load_RaggedRow(t *testing.T) {
	path := writeVariants(t, "hgnc\tperson_id\nARID1B\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "absent.tsv"))
	require.Error(t, err)
}
