package main

import "snowstage-sync/internal/cli"

func main() {
	cli.Execute()
}
