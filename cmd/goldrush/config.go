package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/goldrush/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would use, as YAML.

Search order: --config, ~/.goldrush/configs/goldrush.yaml,
./configs/goldrush.yaml, then the built-in defaults.

Examples:
  goldrush config
  goldrush config --defaults > ./configs/goldrush.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
