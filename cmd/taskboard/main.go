package main

import "github.com/aussiebroadwan/taskboard/internal/tasks/cli"

func main() {
	cli.Execute()
}
