package main

import (
	"github.com/edgeworker/navgate/pkg/cli"
)

func main() {
	cli.Execute()
}
