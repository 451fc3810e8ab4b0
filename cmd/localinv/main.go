package main

import "github.com/katalvlaran/localinv/internal/cli"

func main() {
	cli.Execute()
}
