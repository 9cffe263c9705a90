package main

import (
	"log"

	"github.com/mfeldner/gridrewind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
