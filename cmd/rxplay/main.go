package main

import (
	"fmt"
	"os"

	"github.com/pokt-network/rxsubjects/pkg/playground/cmd"
)

func main() {
	rootCmd := cmd.PlaygroundCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
