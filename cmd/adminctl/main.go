package main

import (
	"github.com/reservly/booking-platform/cmd/adminctl/commands"
)

func main() {
	commands.Execute()
}
