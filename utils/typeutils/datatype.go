package typeutils

import (
	"reflect"

	"github.com/jtr6/invisible-light/types"
)

func TypeFromValue(v any) types.DataType {
	if v == nil {
		return types.Null
	}

	switch v.(type) {
	case bool:
		return types.Bool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return types.Int64
	case float32, float64:
		return types.Float64
	case string, []byte:
		return types.String
	default:
		return types.Unknown
	}
}

// AsFloat64 widens any numeric scalar to float64. The second return is
// false for nil and non-numeric values.
func AsFloat64(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return float64(reflect.ValueOf(v).Int()), true
	case uint, uint8, uint16, uint32, uint64:
		return float64(reflect.ValueOf(v).Uint()), true
	case float32, float64:
		return reflect.ValueOf(v).Float(), true
	default:
		return 0, false
	}
}
