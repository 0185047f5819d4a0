package main

import (
	"fmt"
	"log"

	"github.com/maseology/mmio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Thezuko82/soltrans"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "fit decay parameters to an observed concentration record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		tt := mmio.NewTimer()

		mdl, err := soltrans.ParseModel(viper.GetString("model"))
		if err != nil {
			log.Fatalf("%v", err)
		}
		obs, err := soltrans.ReadObsCSV(viper.GetString("obs"))
		if err != nil {
			log.Fatalf("%v", err)
		}

		par := soltrans.DefaultParameter()
		par.Conc0 = viper.GetFloat64("conc0")
		par.Gradient = viper.GetFloat64("gradient")

		var of float64
		var final soltrans.Parameter
		if viper.GetBool("kdecay-only") {
			of, final = soltrans.CalibrateDecay1(mdl, par, obs)
			fmt.Printf("\nfinal parameters:\n\tKdecay:\t%v\n\nRMSE: %.3f\n", final.Kdecay, of)
		} else {
			of, final = soltrans.CalibrateDecay(mdl, par, obs, true)
		}

		if fp := viper.GetString("out"); fp != "" {
			if err := final.SaveGob(fp); err != nil {
				log.Fatalf("%v", err)
			}
		}
		tt.Lap(fmt.Sprintf("calibration complete (RMSE %.3f)", of))
		return nil
	},
}

func init() {
	def := soltrans.DefaultParameter()
	calibrateCmd.Flags().String("model", string(soltrans.HTB), "model type")
	calibrateCmd.Flags().String("obs", "", "observed Time,Concentration csv (required)")
	calibrateCmd.Flags().Float64("conc0", def.Conc0, "initial concentration [mg/L]")
	calibrateCmd.Flags().Float64("gradient", def.Gradient, "hydraulic gradient")
	calibrateCmd.Flags().Bool("kdecay-only", false, "fit the biodegradation rate only")
	calibrateCmd.Flags().String("out", "", "save fitted parameters (gob)")
	calibrateCmd.MarkFlagRequired("obs")
	rootCmd.AddCommand(calibrateCmd)
}
