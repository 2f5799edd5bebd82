package protocol

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jtr6/invisible-light/catalog"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/logger"
	"github.com/spf13/cobra"
)

// discoverCmd emits the source catalogue's column layout and header keys
var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "discover command",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		table, header, err := catalog.Load(config.InputPath)
		if err != nil {
			return err
		}

		if table.Schema.Len() == 0 {
			return errors.New("no columns found in catalogue")
		}

		message := types.Message{
			Type: types.CatalogMessage,
			Catalog: &types.CatalogRow{
				Columns:    table.Schema.Columns(),
				RowCount:   table.NumRows(),
				HeaderKeys: header.Keys(),
			},
		}

		data, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("failed to marshal catalog message: %s", err)
		}

		logger.Info(string(data))
		return nil
	},
}
