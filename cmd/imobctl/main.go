package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "imobctl",
		Short:        "Manage the Conquista Imob Hub data store",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		seedCmd(),
		propertiesCmd(),
		citiesCmd(),
		settingsCmd(),
		recountCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
