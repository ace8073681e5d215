package main

import (
	"os"

	"voice-memos/cmd/memos/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
