package main

import (
	"github.com/crumbworks/crumb/pkg/cli"
)

func main() {
	cli.Execute()
}
