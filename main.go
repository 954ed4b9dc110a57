package main

import (
	"os"

	"github.com/priyamvada/skillscope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
