package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

func Ternary(cond bool, one, two any) any {
	if cond {
		return one
	}
	return two
}

// UnmarshalFile reads a JSON or YAML file into dest. YAML files are
// converted to JSON first so both formats share one set of struct tags.
func UnmarshalFile(filePath string, dest any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file[%s]: %s", filePath, err)
	}

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		data, err = yaml.YAMLToJSON(data)
		if err != nil {
			return fmt.Errorf("failed to convert yaml file[%s]: %s", filePath, err)
		}
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal file[%s]: %s", filePath, err)
	}

	return nil
}

func IsValidSubcommand(available []*cobra.Command, sub string) bool {
	for _, command := range available {
		if command.Name() == sub {
			return true
		}
	}
	return false
}
