package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portfolioData/internal/dataset"
	"portfolioData/internal/synth"
)

func setupWorkspace(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()

	workDir = t.TempDir()
	genCount = synth.DefaultCount
	genOutput = dataset.DefaultOutput
	genSeed = 0
	t.Cleanup(func() { workDir = "." })

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	return cmd, &out
}

func TestGenerateDefaults(t *testing.T) {
	cmd, out := setupWorkspace(t)

	require.NoError(t, runGenerate(cmd, nil))
	assert.Equal(t, "Generated data.json with 30 items.\n", out.String())

	info, err := os.Stat(filepath.Join(workDir, "assets"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	records, err := dataset.NewService(workDir, nil).Load("data.json")
	require.NoError(t, err)
	assert.NoError(t, dataset.Validate(records, 30))
}

func TestGenerateIsRepeatable(t *testing.T) {
	cmd, _ := setupWorkspace(t)

	require.NoError(t, runGenerate(cmd, nil))
	require.NoError(t, runGenerate(cmd, nil))
}

func TestGenerateRejectsBadCount(t *testing.T) {
	cmd, _ := setupWorkspace(t)
	genCount = 0

	assert.ErrorContains(t, runGenerate(cmd, nil), "invalid count")
}

func TestGenerateUnwritableOutput(t *testing.T) {
	cmd, out := setupWorkspace(t)
	genOutput = filepath.Join("no", "such", "dir", "data.json")

	assert.Error(t, runGenerate(cmd, nil))
	assert.Empty(t, out.String())
}

func TestValidateAfterGenerate(t *testing.T) {
	cmd, out := setupWorkspace(t)
	genSeed = 11
	require.NoError(t, runGenerate(cmd, nil))
	out.Reset()

	validateInput = dataset.DefaultOutput
	validateCount = synth.DefaultCount
	require.NoError(t, runValidate(cmd, nil))
	assert.Contains(t, out.String(), "is valid (30 records)")

	validateCount = 31
	assert.ErrorContains(t, runValidate(cmd, nil), "expected 31 records")
}

func TestExportCSV(t *testing.T) {
	cmd, out := setupWorkspace(t)
	require.NoError(t, runGenerate(cmd, nil))
	out.Reset()

	exportInput = dataset.DefaultOutput
	exportFormat = "csv"
	exportDir = "exports"
	require.NoError(t, runExport(cmd, nil))
	assert.Contains(t, out.String(), "Exported 30 records")

	matches, err := filepath.Glob(filepath.Join(workDir, "exports", "data_*.csv"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	exportFormat = "xml"
	assert.ErrorContains(t, runExport(cmd, nil), "invalid format")
}

func TestWorksListing(t *testing.T) {
	cmd, out := setupWorkspace(t)
	dir := filepath.Join(workDir, "works", "works_02")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<title>Glass Garden</title>"), 0644))

	worksJSON = false
	require.NoError(t, runWorks(cmd, nil))
	assert.Equal(t, "02  Glass Garden  (works/works_02/index.html)\n", out.String())
}

func TestBareRunIgnoresEnvironment(t *testing.T) {
	cmd, out := setupWorkspace(t)
	t.Setenv("DATA_OUTPUT", "elsewhere.json")

	require.NoError(t, applyEnv(rootCmd))
	assert.Equal(t, dataset.DefaultOutput, genOutput)

	require.NoError(t, runGenerate(cmd, nil))
	assert.Equal(t, "Generated data.json with 30 items.\n", out.String())

	_, err := os.Stat(filepath.Join(workDir, "data.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(workDir, "elsewhere.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnvOnlyFillsUnsetFlags(t *testing.T) {
	t.Setenv("DB_NAME", "from-env")

	cmd := &cobra.Command{}
	var database string
	cmd.Flags().StringVar(&database, "database", "portfolio", "")
	require.NoError(t, applyEnv(cmd))
	assert.Equal(t, "from-env", database)

	cmd = &cobra.Command{}
	cmd.Flags().StringVar(&database, "database", "portfolio", "")
	require.NoError(t, cmd.Flags().Set("database", "cli"))
	require.NoError(t, applyEnv(cmd))
	assert.Equal(t, "cli", database)
}
