package main

import (
	"log"
	"os"

	"github.com/LashaJaparidze15/Buddy/internal/cli"
)

func main() {
	log.SetFlags(0)

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
