package main

import "pathsnap/internal/cli"

func main() {
	cli.Execute()
}
