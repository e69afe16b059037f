package main

import (
	"github.com/jirakit/jirakit/internal/cli"
)

func main() {
	cli.Execute()
}
