package main

import "rest-explorer/internal/cli"

func main() {
	cli.Execute()
}
