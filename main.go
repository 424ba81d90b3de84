package main

import (
	"fmt"
	"os"

	"swift-batch/cmd/banks"
	"swift-batch/cmd/export"
	"swift-batch/cmd/process"
	"swift-batch/cmd/root"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(banks.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
