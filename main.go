package main

import (
	"os"

	"github.com/user135711/Blogifier/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
