package main

import (
	"log"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thezuko82/soltrans"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "run a Latin-hypercube sweep over the parameter space",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		tt := mmio.NewTimer()

		mdl, err := soltrans.ParseModel(viper.GetString("model"))
		if err != nil {
			log.Fatalf("%v", err)
		}
		outdir := viper.GetString("outdir")
		mmio.MakeDir(outdir)

		batch, err := soltrans.GenerateSamples(mdl, viper.GetInt("steps"), viper.GetInt("n"), viper.GetInt("workers"), outdir+"/")
		if err != nil {
			log.Fatalf("%v", err)
		}
		log.Printf(" batch %s", batch)
		tt.Lap("sampling complete")
		return nil
	},
}

func init() {
	sampleCmd.Flags().String("model", string(soltrans.HTBCMG), "model type")
	sampleCmd.Flags().Int("steps", soltrans.DefaultParameter().Nstep, "time steps [10,500]")
	sampleCmd.Flags().Int("n", 100, "number of samples")
	sampleCmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "concurrent workers")
	sampleCmd.Flags().String("outdir", "MC", "output directory")
	rootCmd.AddCommand(sampleCmd)
}
