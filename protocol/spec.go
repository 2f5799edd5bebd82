package protocol

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/logger"
	"github.com/spf13/cobra"
)

// specCmd emits the accepted configuration as a machine-readable spec
var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "spec command",
	RunE: func(_ *cobra.Command, _ []string) error {
		message := types.Message{
			Type: types.SpecMessage,
			Spec: map[string]any{
				"input_path": map[string]any{
					"type":        "string",
					"description": "Path of the source catalogue file",
					"default":     constants.DefaultInputPath,
				},
				"output_path": map[string]any{
					"type":        "string",
					"description": "Path of the filtered catalogue file",
					"default":     constants.DefaultOutputPath,
				},
				"threshold": map[string]any{
					"type":        "number",
					"description": "Minimum flux value (exclusive) required across the selected bands",
					"default":     constants.DefaultThreshold,
				},
				"row_cap": map[string]any{
					"type":        "integer",
					"description": "Maximum number of rows in the output catalogue",
					"default":     constants.DefaultRowCap,
				},
				"parquet_path": map[string]any{
					"type":        "string",
					"description": "Optional parquet export path for the filtered rows",
				},
			},
		}

		data, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("failed to marshal spec message: %s", err)
		}

		logger.Info(string(data))
		return nil
	},
}
