package protocol

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jtr6/invisible-light/catalog"
	"github.com/jtr6/invisible-light/selector"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/logger"
	parquetwriter "github.com/jtr6/invisible-light/writers/parquet"
	"github.com/spf13/cobra"
)

// filterCmd runs the full pipeline: load the source catalogue, select
// the rows clearing the brightness threshold up to the row cap, and
// write them out with the source header carried through.
var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "filter command",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		summary, err := run(config)
		if err != nil {
			return err
		}

		data, err := json.Marshal(types.Message{Type: types.SummaryMessage, Summary: summary})
		if err != nil {
			return fmt.Errorf("failed to marshal summary message: %s", err)
		}
		logger.Info(string(data))
		return nil
	},
}

func run(config *Config) (*types.SummaryRow, error) {
	start := time.Now()

	table, header, err := catalog.Load(config.InputPath)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded catalogue[%s] with %d rows", config.InputPath, table.NumRows())

	selection, err := selector.Select(table, config.Threshold, config.RowCap)
	if err != nil {
		return nil, err
	}
	logger.Infof("selected %d of %d rows above threshold %v", selection.NumRows(), table.NumRows(), config.Threshold)

	if err := catalog.Write(config.OutputPath, selection, header); err != nil {
		return nil, err
	}

	if config.ParquetPath != "" {
		if err := parquetwriter.Export(config.ParquetPath, selection); err != nil {
			return nil, err
		}
	}

	logger.Infof("filter finished in %.2fs", time.Since(start).Seconds())
	return &types.SummaryRow{
		RowsTotal:  table.NumRows(),
		RowsKept:   selection.NumRows(),
		Capped:     selection.NumRows() >= config.RowCap,
		Threshold:  config.Threshold,
		OutputPath: config.OutputPath,
	}, nil
}
