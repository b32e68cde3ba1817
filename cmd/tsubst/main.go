package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/tsubst/internal/cli"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		fmt.Fprintln(os.Stderr, cli.MsgErrorHint)
		os.Exit(1)
	}
}
