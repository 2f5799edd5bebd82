package types

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/parquet-go/parquet-go"
)

type DataType string

const (
	Null    DataType = "null"
	Bool    DataType = "boolean"
	Int64   DataType = "integer"
	Float64 DataType = "number"
	String  DataType = "string"
	Unknown DataType = "unknown"
)

// Row is one catalogue row keyed by column name. A nil value is a
// missing/masked measurement.
type Row map[string]any

// ToArrow returns the arrow equivalent type for the datatype
func (d DataType) ToArrow() arrow.DataType {
	switch d {
	case Bool:
		return arrow.FixedWidthTypes.Boolean
	case Int64:
		return arrow.PrimitiveTypes.Int64
	case Float64:
		return arrow.PrimitiveTypes.Float64
	default:
		return arrow.BinaryTypes.String
	}
}

// ToParquet returns the parquet node for the datatype, always optional
// since any catalogue cell can hold a masked value.
func (d DataType) ToParquet() parquet.Node {
	switch d {
	case Bool:
		return parquet.Optional(parquet.Leaf(parquet.BooleanType))
	case Int64:
		return parquet.Optional(parquet.Int(64))
	case Float64:
		return parquet.Optional(parquet.Leaf(parquet.DoubleType))
	default:
		return parquet.Optional(parquet.String())
	}
}

func DataTypeFromArrow(dt arrow.DataType) DataType {
	switch dt.ID() {
	case arrow.BOOL:
		return Bool
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64:
		return Int64
	case arrow.FLOAT32, arrow.FLOAT64:
		return Float64
	case arrow.STRING, arrow.LARGE_STRING:
		return String
	default:
		return Unknown
	}
}
