package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "soltrans",
	Short: "HTBCMG solute-transport demonstration models",
	Long: `soltrans runs the placeholder HTBCMG (hydraulic/thermal/biological/
chemical/mechanical/gas) solute-transport models: single runs, Latin-hypercube
parameter sweeps, calibration to an observed record, and the interactive
demonstration page.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./soltrans.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("soltrans")
	}
	viper.SetEnvPrefix("soltrans")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println(" using config:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
