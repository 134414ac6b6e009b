package main

import (
	"github.com/EdGreen21/ImmunoNodes/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
