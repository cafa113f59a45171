package main

import "github.com/leakgate/leakgate/internal/cli"

func main() {
	cli.Execute()
}
