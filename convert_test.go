package genotypefasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoByTwo = "A/G\tC/C\t\n./.\tG/T\t\n"

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(dir, DefaultInputPath)
	cfg.OutputPath = filepath.Join(dir, DefaultOutputPath)

	return cfg
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

func TestConvert(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte(twoByTwo), 0644))

	summary, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nR-\n>individual_2\nCK\n", readFile(t, cfg.OutputPath))
	assert.Equal(t, 2, summary.Sites)
	assert.Equal(t, 3, summary.Columns)
	assert.Equal(t, 2, summary.Records)
	assert.Equal(t, 1, summary.SkippedColumns)
	assert.Zero(t, summary.UnrecognizedTotal())
}

func TestConvertOverwritesOutput(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("T/T\n"), 0644))
	require.NoError(t, os.WriteFile(cfg.OutputPath, []byte(">old\nAAAAAAAAAAAAAAAA\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nT\n", readFile(t, cfg.OutputPath))
}

func TestConvertGzipInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputPath += ".gz"

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	_, err := gw.Write([]byte(twoByTwo))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, os.WriteFile(cfg.InputPath, buf.Bytes(), 0644))

	_, err = Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nR-\n>individual_2\nCK\n", readFile(t, cfg.OutputPath))
}

func TestConvertAutoDelimiter(t *testing.T) {
	cfg := testConfig(t)
	cfg.Delimiter = DelimiterAuto
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/G,C/C\n./.,G/T\nT/T,A/A\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nR-T\n>individual_2\nCKA\n", readFile(t, cfg.OutputPath))
}

func TestConvertMissingInputCreatesNoOutput(t *testing.T) {
	cfg := testConfig(t)

	_, err := Convert(context.Background(), cfg, nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInputUnreadable)
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertUnknownErrorCreatesNoOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.Unknown = UnknownError
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/A\tA/N\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnrecognizedCall)
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertUnknownGapCounts(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/A\tA/N\nA/N\t0/1\n"), 0644))

	summary, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nA-\n>individual_2\n--\n", readFile(t, cfg.OutputPath))
	assert.Equal(t, map[string]int{"A/N": 2, "0/1": 1}, summary.Unrecognized)
	assert.Equal(t, 3, summary.UnrecognizedTotal())
}

func TestConvertOutputDirectoryMissing(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(filepath.Dir(cfg.OutputPath), "nope", "out.fasta")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte(twoByTwo), 0644))

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrOutputWrite)
}

func TestConvertNames(t *testing.T) {
	cfg := testConfig(t)
	cfg.NamesPath = filepath.Join(filepath.Dir(cfg.InputPath), "samples.txt")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte(twoByTwo), 0644))
	require.NoError(t, os.WriteFile(cfg.NamesPath, []byte("NA12878\nNA12891\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">NA12878\nR-\n>NA12891\nCK\n", readFile(t, cfg.OutputPath))
}

func TestConvertTooManyNames(t *testing.T) {
	cfg := testConfig(t)
	cfg.NamesPath = filepath.Join(filepath.Dir(cfg.InputPath), "samples.txt")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/A\tC/C\n"), 0644))
	require.NoError(t, os.WriteFile(cfg.NamesPath, []byte("a\nb\nc\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrNameCount)
}

func TestConvertGoogleStorageWithoutClient(t *testing.T) {
	cfg := testConfig(t)
	cfg.InputPath = "gs://bucket/file1.txt"

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrInputUnreadable)
}

func TestConvertInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Delimiter = "ab"

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrConfig)
}

func TestConvertTooManyNamesTrailingDelimiter(t *testing.T) {
	cfg := testConfig(t)
	cfg.NamesPath = filepath.Join(filepath.Dir(cfg.InputPath), "samples.txt")
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/A\tC/C\t\n"), 0644))
	require.NoError(t, os.WriteFile(cfg.NamesPath, []byte("s1\ns2\ns3\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrNameCount)
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertMalformedInputCreatesNoOutput(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/A\t\"C/C\nG/G\tT/T\nA/A\tA/A\n"), 0644))

	_, err := Convert(context.Background(), cfg, nil)

	assert.ErrorIs(t, err, ErrMalformedInput)
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestConvertAutoDelimiterSpace(t *testing.T) {
	cfg := testConfig(t)
	cfg.Delimiter = DelimiterAuto
	require.NoError(t, os.WriteFile(cfg.InputPath, []byte("A/G C/C\nG/G T/T\n"), 0644))

	summary, err := Convert(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, ">individual_1\nRG\n>individual_2\nCT\n", readFile(t, cfg.OutputPath))
	assert.Zero(t, summary.UnrecognizedTotal())
}
