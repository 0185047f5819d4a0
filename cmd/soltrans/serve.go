package main

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Thezuko82/soltrans/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "host the interactive demonstration page",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		lgr, err := zap.NewProduction()
		if err != nil {
			log.Fatalf(" serve: %v", err)
		}
		defer lgr.Sync()

		srv := server.New(lgr)
		return srv.ListenAndServe(viper.GetString("addr"))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}
