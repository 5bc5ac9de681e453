package main

import "github.com/mcoot/frogfen/internal/cli"

func main() {
	cli.Execute()
}
