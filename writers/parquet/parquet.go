package parquet

import (
	"fmt"

	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/logger"
	pqgo "github.com/parquet-go/parquet-go"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/source"
)

// ToParquet maps the catalogue schema onto a parquet group node. Every
// column is optional since any cell can hold a masked value.
func ToParquet(schema *types.Schema) *pqgo.Schema {
	groupNode := pqgo.Group{}
	for _, column := range schema.Columns() {
		groupNode[column.Name] = column.Type.ToParquet()
	}
	return pqgo.NewSchema("catalogue", groupNode)
}

// Export writes the table to a snappy-compressed parquet file for
// downstream analysis. The catalogue header is not representable in
// parquet and is not carried over.
func Export(path string, table *types.Table) error {
	var pqFile source.ParquetFile
	pqFile, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file writer[%s]: %s", path, err)
	}

	writer := pqgo.NewGenericWriter[any](pqFile, ToParquet(table.Schema), pqgo.Compression(&pqgo.Snappy))

	rows := make([]any, len(table.Rows))
	for i, row := range table.Rows {
		rows[i] = map[string]any(row)
	}

	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			pqFile.Close()
			return fmt.Errorf("failed to write parquet rows[%s]: %s", path, err)
		}
	}

	if err := writer.Close(); err != nil {
		pqFile.Close()
		return fmt.Errorf("failed to close parquet writer[%s]: %s", path, err)
	}
	if err := pqFile.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file[%s]: %s", path, err)
	}

	logger.Infof("exported %d rows to parquet[%s]", table.NumRows(), path)
	return nil
}
