package main

import (
	"saveworks/cli"
)

func main() {
	cli.Start()
}
