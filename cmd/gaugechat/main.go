package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaugelab/gaugechat/internal/version"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "gaugechat",
		Short: "Multi-provider LLM chat console server",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (falls back to CONFIG_PATH, then config.toml)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(_ *cobra.Command, _ []string) {
			runServe()
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(version.GetInfo())
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
