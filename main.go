package main

import (
	"log"

	"github.com/sjzar/clawbridge/cmd/clawbridge"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	clawbridge.Execute()
}
