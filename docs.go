package main

import (
	"fmt"

	"github.com/EdGreen21/ImmunoNodes/cmd"
	"github.com/spf13/cobra/doc"
)

// makeDocs parses the commands and outputs Markdown documentation files
func makeDocs() {
	if err := doc.GenMarkdownTree(cmd.RootCmd, "./docs"); err != nil {
		fmt.Println(err.Error())
	}
}
