package main

import "github.com/focustrack/focustrack/internal/cli"

func main() {
	cli.Execute()
}
