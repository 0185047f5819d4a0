package main

import (
	"log"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thezuko82/soltrans"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "evaluate a single model run, writing the CSV table and chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		tt := mmio.NewTimer()

		mdl, err := soltrans.ParseModel(viper.GetString("model"))
		if err != nil {
			log.Fatalf("%v", err)
		}
		par := soltrans.Parameter{
			Nstep:    viper.GetInt("steps"),
			Conc0:    viper.GetFloat64("conc0"),
			Gradient: viper.GetFloat64("gradient"),
			Kdecay:   viper.GetFloat64("kdecay"),
			Kd:       viper.GetFloat64("kd"),
		}
		if err := par.Check(); err != nil {
			log.Fatalf("%v", err)
		}

		ev := soltrans.Evaluator{Mdl: mdl, Par: par}
		s := ev.Evaluate()

		out := viper.GetString("out")
		if err := s.WriteCSV(out + ".csv"); err != nil {
			log.Fatalf("%v", err)
		}
		if err := s.WriteChart(out + ".png"); err != nil {
			log.Fatalf("%v", err)
		}
		tt.Lap("run complete")
		return nil
	},
}

func init() {
	def := soltrans.DefaultParameter()
	runCmd.Flags().String("model", string(soltrans.Basic), "model type (Basic Hydro HT HTB HTBCM HTBCMG)")
	runCmd.Flags().Int("steps", def.Nstep, "time steps [10,500]")
	runCmd.Flags().Float64("conc0", def.Conc0, "initial concentration [mg/L]")
	runCmd.Flags().Float64("gradient", def.Gradient, "hydraulic gradient")
	runCmd.Flags().Float64("kdecay", def.Kdecay, "biodegradation rate [1/day]")
	runCmd.Flags().Float64("kd", def.Kd, "distribution coefficient Kd")
	runCmd.Flags().String("out", "solute_transport_results", "output file prefix")
	rootCmd.AddCommand(runCmd)
}
