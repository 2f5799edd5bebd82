/*
 * Copyright 2026 invisible-light authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package protocol

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jtr6/invisible-light/catalog"
	"github.com/jtr6/invisible-light/constants"
	"github.com/jtr6/invisible-light/types"
	"github.com/jtr6/invisible-light/utils/logger"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	RunE: func(cmd *cobra.Command, _ []string) error {
		config, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		message := types.Message{
			Type:             types.ConnectionStatusMessage,
			ConnectionStatus: runCheck(config),
		}

		data, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("failed to marshal status message: %s", err)
		}
		logger.Info(string(data))
		return nil
	},
}

// runCheck verifies the source catalogue opens and exposes every flux
// column the selection predicate reads.
func runCheck(config *Config) *types.StatusRow {
	err := func() error {
		table, _, err := catalog.Load(config.InputPath)
		if err != nil {
			return err
		}

		columns := append([]string{}, constants.RequiredFluxColumns...)
		columns = append(columns, constants.Channel1FluxColumns...)
		for _, column := range columns {
			if table.Schema.Index(column) < 0 {
				return fmt.Errorf("column [%s] not found in catalogue", column)
			}
		}
		return nil
	}()

	status := &types.StatusRow{Status: types.ConnectionSucceed}
	if err != nil {
		status.Status = types.ConnectionFailed
		status.Message = err.Error()
	}
	return status
}
