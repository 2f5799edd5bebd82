package protocol

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jtr6/invisible-light/catalog"
	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/types"
	pqgo "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSourceCatalogue(t *testing.T, path string, fluxes []float64) {
	t.Helper()

	columns := []types.Column{}
	for _, name := range constants.RequiredFluxColumns {
		columns = append(columns, types.Column{Name: name, Type: types.Float64})
	}
	for _, name := range constants.Channel1FluxColumns {
		columns = append(columns, types.Column{Name: name, Type: types.Float64})
	}
	table := types.NewTable(types.NewSchema(columns...))

	for _, flux := range fluxes {
		row := types.Row{}
		for _, column := range columns {
			row[column.Name] = flux
		}
		table.AddRow(row)
	}

	header := types.NewHeader()
	header.Set("TELESCOP", "LOFAR")
	require.NoError(t, catalog.Write(path, table, header))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "source.arrow")
	output := filepath.Join(dir, "filtered.arrow")

	// 3 bright rows, 2 faint ones
	writeSourceCatalogue(t, input, []float64{100, 5, 60, 2, 30})

	summary, err := run(&Config{
		InputPath:  input,
		OutputPath: output,
		Threshold:  10,
		RowCap:     50,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.RowsTotal)
	assert.Equal(t, 3, summary.RowsKept)
	assert.False(t, summary.Capped)

	filtered, header, err := catalog.Load(output)
	require.NoError(t, err)
	assert.Equal(t, 3, filtered.NumRows())

	telescope, found := header.Get("TELESCOP")
	require.True(t, found, "source header must be carried through to the output")
	assert.Equal(t, "LOFAR", telescope)
}

func TestRunCapsOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "source.arrow")
	output := filepath.Join(dir, "filtered.arrow")

	fluxes := make([]float64, 60)
	for i := range fluxes {
		fluxes[i] = 100
	}
	writeSourceCatalogue(t, input, fluxes)

	summary, err := run(&Config{
		InputPath:  input,
		OutputPath: output,
		Threshold:  10,
		RowCap:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, 50, summary.RowsKept)
	assert.True(t, summary.Capped)
}

func TestRunWithParquetExport(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "source.arrow")

	writeSourceCatalogue(t, input, []float64{100, 100})

	parquetPath := filepath.Join(dir, "filtered.parquet")
	summary, err := run(&Config{
		InputPath:   input,
		OutputPath:  filepath.Join(dir, "filtered.arrow"),
		Threshold:   10,
		RowCap:      50,
		ParquetPath: parquetPath,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RowsKept)

	osFile, err := os.Open(parquetPath)
	require.NoError(t, err)
	defer osFile.Close()
	info, err := osFile.Stat()
	require.NoError(t, err)
	pqFile, err := pqgo.OpenFile(osFile, info.Size())
	require.NoError(t, err)
	assert.Equal(t, int64(2), pqFile.NumRows(), "parquet export must hold the filtered row count")
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := run(&Config{
		InputPath:  filepath.Join(dir, "missing.arrow"),
		OutputPath: filepath.Join(dir, "filtered.arrow"),
		Threshold:  10,
		RowCap:     50,
	})
	require.Error(t, err)
}
