package main

import (
	"github.com/NVIDIA/deploykit/pkg/cli"
)

func main() {
	cli.Execute()
}
