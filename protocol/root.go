package protocol

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/utils"
	"github.com/jtr6/invisible-light/utils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath  string
	inputPath   string
	outputPath  string
	parquetPath string
	threshold   float64
	rowCap      int

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "invisible-light",
	Short: "root command",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		viper.SetDefault(constants.ConfigFolder, os.TempDir())
		configFolder := utils.Ternary(configPath == "", os.TempDir(), filepath.Dir(configPath)).(string)
		viper.Set(constants.ConfigFolder, configFolder)

		// logger uses CONFIG_FOLDER
		logger.Init()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'invisible-light --help' to display usage guide", args[0])
		}

		return nil
	},
}

// resolveConfig merges defaults, the optional config file and any
// explicitly set flags, in that precedence order.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		if err := utils.UnmarshalFile(configPath, config); err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Changed("input") {
		config.InputPath = inputPath
	}
	if cmd.Flags().Changed("output") {
		config.OutputPath = outputPath
	}
	if cmd.Flags().Changed("threshold") {
		config.Threshold = threshold
	}
	if cmd.Flags().Changed("row-cap") {
		config.RowCap = rowCap
	}
	if cmd.Flags().Changed("parquet") {
		config.ParquetPath = parquetPath
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", err)
	}

	return config, nil
}

func init() {
	commands = append(commands, specCmd, checkCmd, discoverCmd, filterCmd)
	RootCmd.AddCommand(commands...)

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "", "(Optional) JSON or YAML config file")
	RootCmd.PersistentFlags().StringVarP(&inputPath, "input", "", constants.DefaultInputPath, "(Optional) Source catalogue path")
	RootCmd.PersistentFlags().StringVarP(&outputPath, "output", "", constants.DefaultOutputPath, "(Optional) Filtered catalogue path")
	RootCmd.PersistentFlags().Float64VarP(&threshold, "threshold", "", constants.DefaultThreshold, "(Optional) Minimum flux value, exclusive")
	RootCmd.PersistentFlags().IntVarP(&rowCap, "row-cap", "", constants.DefaultRowCap, "(Optional) Maximum rows in the output catalogue")
	RootCmd.PersistentFlags().StringVarP(&parquetPath, "parquet", "", "", "(Optional) Also export the filtered rows to this parquet path")

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
