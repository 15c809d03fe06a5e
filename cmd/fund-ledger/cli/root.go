package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/emergency-fund/fund-ledger/pkg"
	"github.com/spf13/cobra"
)

const (
	defaultConfigFileName = "config.yml"
	configPathEnv         = "FUND_LEDGER_CONFIG"
)

var (
	cfgPath string
	rootCmd = &cobra.Command{
		Use:          "fund-ledger",
		Short:        "Emergency fund ledger service",
		SilenceUsage: true,
	}
)

func Setup() error {
	homePath, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	defaultConfigPath := pkg.Getenv(configPathEnv, getDefaultConfigFile(homePath, defaultConfigFileName))

	rootCmd.AddCommand(StartServerCmd())
	rootCmd.AddCommand(FundAddressCmd())
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigPath, fmt.Sprintf("config file (default %s)", defaultConfigPath))

	return rootCmd.Execute()
}

func getDefaultConfigFile(homePath, filename string) string {
	return filepath.Join(homePath, filename)
}

func GetConfigPath() string {
	return cfgPath
}
