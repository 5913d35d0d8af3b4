package main

import (
	"log"

	"github.com/edgeworker/navgate/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
