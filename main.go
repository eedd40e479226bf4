// Package main provides the entry point for Chippie.
// Chippie is a CHIP-8 virtual machine with an SDL2 front end.
//
// For the full CLI, use: go run ./cmd/chippie
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("Chippie - CHIP-8 virtual machine")
	fmt.Println("")
	fmt.Println("Usage: chippie [options] <rom file>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -builtin   Run a built-in demo program")
	fmt.Println("  -headless  Run without a window on the simulation clock")
	fmt.Println("  -disasm    Print a disassembly listing and exit")
	fmt.Println("  -debug     Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/chippie' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/chippie' instead.")
	}
}
