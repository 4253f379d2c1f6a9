package main

import (
	"os"

	"compiler/cmd/yak"
)

func main() {
	os.Exit(yak.Execute())
}
