package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geocoin/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration geocoin would use, as YAML.

Search order: --config path, ~/.geocoin/config.yaml, ./configs/geocoin.yaml,
then the built-in defaults. The source is printed to stderr so the YAML
can be redirected into a new config file.

Examples:
  geocoin config
  geocoin config --defaults > ~/.geocoin/config.yaml
  geocoin --density dense config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}

	cfg, src, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "# source: %s\n", src)
	fmt.Print(string(data))
	return nil
}
