package catalog

import (
	"path/filepath"
	"testing"

	"github.com/jtr6/invisible-light/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() *types.Schema {
	return types.NewSchema(
		types.Column{Name: "source_id", Type: types.String},
		types.Column{Name: "u_flux", Type: types.Float64},
		types.Column{Name: "J_flux", Type: types.Float64},
		types.Column{Name: "detections", Type: types.Int64},
		types.Column{Name: "resolved", Type: types.Bool},
	)
}

func testHeader() *types.Header {
	header := types.NewHeader()
	header.Set("TELESCOP", "LOFAR")
	header.Set("ORIGIN", "lockman_optIR")
	header.Set("EXTNAME", "catalogue")
	return header
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.arrow")

	table := types.NewTable(testSchema())
	table.AddRow(types.Row{"source_id": "J1048+57", "u_flux": 12.5, "J_flux": 100.0, "detections": int64(3), "resolved": true})
	table.AddRow(types.Row{"source_id": "J1049+58", "u_flux": 0.25, "J_flux": nil, "detections": int64(1), "resolved": false})

	require.NoError(t, Write(path, table, testHeader()))

	loaded, header, err := Load(path)
	require.NoError(t, err)

	assert.True(t, table.Schema.Equal(loaded.Schema), "schema must survive the round trip")
	assert.Equal(t, table.Rows, loaded.Rows)

	// header cards carried through unmodified, in order
	assert.Equal(t, []string{"TELESCOP", "ORIGIN", "EXTNAME"}, header.Keys())
	origin, found := header.Get("ORIGIN")
	require.True(t, found)
	assert.Equal(t, "lockman_optIR", origin)
}

func TestWriteLoadEmptyTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.arrow")

	table := types.NewTable(testSchema())
	require.NoError(t, Write(path, table, testHeader()))

	loaded, header, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.NumRows())
	assert.True(t, table.Schema.Equal(loaded.Schema))
	assert.Equal(t, 3, header.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "does-not-exist.arrow"))
	require.Error(t, err)
}

func TestWriteUnwritablePath(t *testing.T) {
	table := types.NewTable(testSchema())
	err := Write(filepath.Join(t.TempDir(), "missing-dir", "out.arrow"), table, types.NewHeader())
	require.Error(t, err)
}

func TestWriteRejectsMistypedValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.arrow")
	table := types.NewTable(testSchema())
	table.AddRow(types.Row{"source_id": "J1048+57", "u_flux": "not-a-number", "J_flux": 1.0, "detections": int64(0), "resolved": false})

	err := Write(path, table, types.NewHeader())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u_flux")
}
