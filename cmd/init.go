package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	tt "github.com/rubytools/ralint/internal/types"
	"github.com/rubytools/ralint/lint"
)

// initCmd: ralint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created/updated: %s\n", cfgFile)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = ".ralint.yaml"
	}

	config := lint.Config{
		Name: "ralint",
		Rules: map[string]tt.ConfigRule{
			"trailing-discard": {
				Severity: tt.SeverityWarning,
				Options: map[string]interface{}{
					"allow-named-underscore": false,
				},
			},
			"redundant-assignment-parens": {
				Severity: tt.SeverityInfo,
			},
		},
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configurationPath, d, 0o644)
}
