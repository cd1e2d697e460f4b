package cmd

import (
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Build and preview the portfolio site",
	Long: `Portfolio renders the single-page portfolio from its content file,
exports it as static files for any static host, and serves it locally
for preview. Theme, scroll and counter behaviour run in the browser
from the WebAssembly bundle built by "make wasm".`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}
