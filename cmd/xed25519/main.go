package main

import (
	"os"

	"github.com/AlexanderYastrebov/xed25519/cmd/xed25519/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
