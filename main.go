package main

import (
	"os"

	"github.com/aynal-hub/Digital-Tech-Group-DTG-New/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
