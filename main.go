package main

import (
	"fmt"
	"os"

	"gioui.org/app"
)

func main() {
	cmd := newRootCmd()

	// Run the command in a goroutine
	go func() {
		if err := cmd.Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	// app.Main() must be called from the main goroutine
	app.Main()
}
