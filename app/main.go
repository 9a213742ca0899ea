package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zidaye/odbc-bridge/app/cmd"
	"github.com/zidaye/odbc-bridge/app/version"
)

var rootCmd = &cobra.Command{
	Use:   "odbc-bridge",
	Short: "Tools for the ODBC buffer to typed column bridge",
}

func init() {
	rootCmd.AddCommand(cmd.TypesCmd)
	rootCmd.AddCommand(cmd.DemoCmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
