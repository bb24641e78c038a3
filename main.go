package main

import (
	"log"

	"github.com/skillconnect/skillconnect/app"
)

func main() {
	if err := app.SetupAndRunServer(); err != nil {
		log.Fatal(err)
	}
}
