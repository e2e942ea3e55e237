// Package main provides a pointer to LC-3's real entry point.
// LC-3 is a software emulator for the LC-3 instruction set architecture.
//
// For the full CLI, use: go run ./cmd/lc3
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("lc3 - LC-3 instruction-set emulator")
	fmt.Println("")
	fmt.Println("Usage: lc3 <image-file> [<image-file>...]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -v, --verbose          Print load/exit diagnostics to stderr")
	fmt.Println("      --max-instructions Stop after this many instructions (0 = unlimited)")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/lc3' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/lc3' instead.")
	}
}
