package selector

import (
	"fmt"

	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/typeutils"
)

// exceeds reports whether a single flux measurement is strictly brighter
// than the threshold. A missing/masked value never clears the threshold;
// a non-numeric value is a fatal error.
func exceeds(column string, value any, lim float64) (bool, error) {
	if value == nil {
		return false, nil
	}
	f, ok := typeutils.AsFloat64(value)
	if !ok {
		return false, fmt.Errorf("column [%s]: expected numeric flux, got %s", column, typeutils.TypeFromValue(value))
	}
	return f > lim, nil
}

// RowIsValid decides whether one catalogue row survives the brightness
// cut: every column in constants.RequiredFluxColumns must be strictly
// greater than lim, and at least one of the two IRAC channel-1 columns
// must be as well. The channel-1 pair short-circuits: when the SWIRE
// measurement clears the cut, the SERVS column is never read.
//
// A column absent from the schema is a fatal error, there is no fallback.
func RowIsValid(schema *types.Schema, row types.Row, lim float64) (bool, error) {
	valid := true
	for _, column := range constants.RequiredFluxColumns {
		if schema.Index(column) < 0 {
			return false, fmt.Errorf("column [%s] not found in catalogue", column)
		}
		above, err := exceeds(column, row[column], lim)
		if err != nil {
			return false, err
		}
		valid = valid && above
	}

	swire, servs := constants.Channel1FluxColumns[0], constants.Channel1FluxColumns[1]
	if schema.Index(swire) < 0 {
		return false, fmt.Errorf("column [%s] not found in catalogue", swire)
	}
	swireAbove, err := exceeds(swire, row[swire], lim)
	if err != nil {
		return false, err
	}
	if !swireAbove {
		if schema.Index(servs) < 0 {
			return false, fmt.Errorf("column [%s] not found in catalogue", servs)
		}
		servsAbove, err := exceeds(servs, row[servs], lim)
		if err != nil {
			return false, err
		}
		valid = valid && servsAbove
	}

	return valid, nil
}

// Select scans the table in row order and accumulates rows passing the
// brightness cut into a new table over the same schema, stopping as soon
// as rowCap rows are collected. Rows past the cap are never evaluated.
// A predicate error aborts the whole selection, no partial table is
// returned.
func Select(table *types.Table, lim float64, rowCap int) (*types.Table, error) {
	selection := types.NewTable(table.Schema)
	for _, row := range table.Rows {
		if selection.NumRows() >= rowCap {
			break
		}
		valid, err := RowIsValid(table.Schema, row, lim)
		if err != nil {
			return nil, err
		}
		if valid {
			selection.AddRow(row)
		}
	}
	return selection, nil
}
