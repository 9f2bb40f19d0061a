package main

import (
	"github.com/bfgroup/barbarian/internal/command"
)

func main() {
	command.Execute()
}
