package main

import (
	"log"

	"github.com/crumbworks/crumb/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
