package protocol

import (
	"fmt"

	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/utils"
)

// Config holds the full run configuration: the two catalogue paths, the
// brightness threshold, the output row cap and an optional parquet
// export path.
type Config struct {
	InputPath   string  `json:"input_path" validate:"required"`
	OutputPath  string  `json:"output_path" validate:"required"`
	Threshold   float64 `json:"threshold"`
	RowCap      int     `json:"row_cap" validate:"gte=0"`
	ParquetPath string  `json:"parquet_path,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		InputPath:  constants.DefaultInputPath,
		OutputPath: constants.DefaultOutputPath,
		Threshold:  constants.DefaultThreshold,
		RowCap:     constants.DefaultRowCap,
	}
}

func (c *Config) Validate() error {
	if c.InputPath == c.OutputPath {
		return fmt.Errorf("input and output path must differ, both are [%s]", c.InputPath)
	}

	return utils.Validate(c)
}
