package main

import (
	"uninote-collector/cmd/unidl/cmd"
)

func main() {
	cmd.Execute()
}
