package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils"
	"github.com/jtr6/invisible-light/utils/logger"
	"github.com/jtr6/invisible-light/utils/typeutils"
)

// Load reads a whole catalogue file into memory: the typed column table
// plus the schema-level metadata header. No streaming, the caller owns
// the full table.
func Load(path string) (*types.Table, *types.Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open catalogue[%s]: %s", path, err)
	}
	defer file.Close()

	reader, err := ipc.NewFileReader(file, ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read catalogue[%s]: %s", path, err)
	}
	defer reader.Close()

	arrowSchema := reader.Schema()
	schema, err := schemaFromArrow(arrowSchema)
	if err != nil {
		return nil, nil, fmt.Errorf("catalogue[%s]: %s", path, err)
	}

	metadata := arrowSchema.Metadata()
	header := types.NewHeaderFromPairs(metadata.Keys(), metadata.Values())

	table := types.NewTable(schema)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read catalogue batch[%s]: %s", path, err)
		}
		if err := appendRecordRows(table, record); err != nil {
			return nil, nil, fmt.Errorf("catalogue[%s]: %s", path, err)
		}
	}

	logger.Debugf("loaded catalogue[%s]: %d rows, %d columns, %d header cards",
		path, table.NumRows(), schema.Len(), header.Len())
	return table, header, nil
}

// Write serializes the table to path as a single batch, re-attaching the
// header metadata to the output schema unchanged.
func Write(path string, table *types.Table, header *types.Header) error {
	arrowSchema, err := schemaToArrow(table.Schema, header)
	if err != nil {
		return fmt.Errorf("catalogue[%s]: %s", path, err)
	}

	builder := array.NewRecordBuilder(memory.DefaultAllocator, arrowSchema)
	defer builder.Release()
	for _, row := range table.Rows {
		if err := appendRowToBuilder(builder, table.Schema, row); err != nil {
			return fmt.Errorf("catalogue[%s]: %s", path, err)
		}
	}
	record := builder.NewRecord()
	defer record.Release()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalogue[%s]: %s", path, err)
	}

	writer, err := ipc.NewFileWriter(file, ipc.WithSchema(arrowSchema), ipc.WithAllocator(memory.DefaultAllocator))
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to create catalogue writer[%s]: %s", path, err)
	}

	if err := writer.Write(record); err != nil {
		utils.CloseAll(writer, file)
		return fmt.Errorf("failed to write catalogue[%s]: %s", path, err)
	}
	if err := utils.CloseAll(writer, file); err != nil {
		return fmt.Errorf("failed to finalize catalogue[%s]: %s", path, err)
	}

	logger.Debugf("wrote catalogue[%s]: %d rows", path, table.NumRows())
	return nil
}

func schemaFromArrow(arrowSchema *arrow.Schema) (*types.Schema, error) {
	columns := make([]types.Column, len(arrowSchema.Fields()))
	for i, field := range arrowSchema.Fields() {
		dataType := types.DataTypeFromArrow(field.Type)
		if dataType == types.Unknown {
			return nil, fmt.Errorf("unsupported column type [%s] for column [%s]", field.Type, field.Name)
		}
		columns[i] = types.Column{Name: field.Name, Type: dataType}
	}
	return types.NewSchema(columns...), nil
}

func schemaToArrow(schema *types.Schema, header *types.Header) (*arrow.Schema, error) {
	fields := make([]arrow.Field, schema.Len())
	for i, column := range schema.Columns() {
		if column.Type == types.Unknown || column.Type == types.Null {
			return nil, fmt.Errorf("cannot serialize column [%s] with type [%s]", column.Name, column.Type)
		}
		fields[i] = arrow.Field{Name: column.Name, Type: column.Type.ToArrow(), Nullable: true}
	}
	metadata := arrow.NewMetadata(header.Keys(), header.Values())
	return arrow.NewSchema(fields, &metadata), nil
}

func appendRecordRows(table *types.Table, record arrow.Record) error {
	numRows := int(record.NumRows())
	numCols := int(record.NumCols())
	for i := 0; i < numRows; i++ {
		row := types.Row{}
		for j := 0; j < numCols; j++ {
			value, err := cellValue(record.Column(j), i)
			if err != nil {
				return fmt.Errorf("column [%s]: %s", table.Schema.Column(j).Name, err)
			}
			row[table.Schema.Column(j).Name] = value
		}
		table.AddRow(row)
	}
	return nil
}

// cellValue widens every numeric column to its 64-bit in-memory form;
// masked cells come back as nil.
func cellValue(column arrow.Array, i int) (any, error) {
	if column.IsNull(i) {
		return nil, nil
	}
	switch col := column.(type) {
	case *array.Boolean:
		return col.Value(i), nil
	case *array.Int8:
		return int64(col.Value(i)), nil
	case *array.Int16:
		return int64(col.Value(i)), nil
	case *array.Int32:
		return int64(col.Value(i)), nil
	case *array.Int64:
		return col.Value(i), nil
	case *array.Float32:
		return float64(col.Value(i)), nil
	case *array.Float64:
		return col.Value(i), nil
	case *array.String:
		return col.Value(i), nil
	case *array.LargeString:
		return col.Value(i), nil
	default:
		return nil, fmt.Errorf("unsupported array type [%T]", column)
	}
}

func mistypedValue(column types.Column, value any) error {
	return fmt.Errorf("column [%s]: expected %s, got %s", column.Name, column.Type, typeutils.TypeFromValue(value))
}

func appendRowToBuilder(builder *array.RecordBuilder, schema *types.Schema, row types.Row) error {
	for j, column := range schema.Columns() {
		value := row[column.Name]
		if value == nil {
			builder.Field(j).AppendNull()
			continue
		}
		switch fb := builder.Field(j).(type) {
		case *array.BooleanBuilder:
			v, ok := value.(bool)
			if !ok {
				return mistypedValue(column, value)
			}
			fb.Append(v)
		case *array.Int64Builder:
			v, ok := value.(int64)
			if !ok {
				return mistypedValue(column, value)
			}
			fb.Append(v)
		case *array.Float64Builder:
			v, ok := value.(float64)
			if !ok {
				return mistypedValue(column, value)
			}
			fb.Append(v)
		case *array.StringBuilder:
			v, ok := value.(string)
			if !ok {
				return mistypedValue(column, value)
			}
			fb.Append(v)
		default:
			return fmt.Errorf("column [%s]: unsupported builder type [%T]", column.Name, fb)
		}
	}
	return nil
}
