package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "aeon",
	Short: "Lifespan timeline charts in the terminal",
	Long: `Aeon keeps a catalog of entities with lifespans and renders them as a
timeline chart: a vertical time axis with bars packed into the minimum
number of columns. Browse it interactively, or export it as SVG.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.RunE = runRootDefault
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .aeon.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".aeon")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("AEON")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault auto-launches the TUI when a catalog database already
// exists in the cwd. Otherwise it falls back to showing help.
func runRootDefault(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
		return cmd.Help()
	}
	// Delegate to the tui subcommand.
	return runTUI(tuiCmd, nil)
}
