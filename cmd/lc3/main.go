// Command lc3 runs the LC-3 instruction-set emulator against one or more
// binary program images.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/go-lc3/lc3/loader"
	"github.com/go-lc3/lc3/vm"
)

var (
	verbose         bool
	maxInstructions uint64
)

func main() {
	os.Exit(run())
}

// run builds and executes the lc3 command, returning the process exit
// code rather than calling os.Exit directly so it can be driven from
// tests.
func run() int {
	exitCode := 0

	cmd := &cobra.Command{
		Use:           "lc3 <image-file> [<image-file>...]",
		Short:         "LC-3 instruction-set emulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(os.Stderr, "usage: lc3 <image-file> [<image-file>...]")
				exitCode = 2
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode = runEmulator(args)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print load/exit diagnostics to stderr")
	cmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 0, "stop after this many instructions (0 = unlimited)")

	if err := cmd.Execute(); err != nil && err != errUsage {
		fmt.Fprintf(os.Stderr, "lc3: %v\n", err)
		return 1
	}

	return exitCode
}

// errUsage is a sentinel returned by the Args validator; the usage
// message and exit code 2 have already been printed/recorded by the time
// it propagates, so it is never itself printed.
var errUsage = fmt.Errorf("usage error")

// runEmulator loads every image, wires the host terminal, installs the
// SIGINT handler, and runs the fetch-decode-execute loop to completion.
func runEmulator(paths []string) int {
	term := vm.NewTerminal()
	if err := term.EnableRawMode(); err != nil {
		fmt.Fprintf(os.Stderr, "lc3: %v\n", err)
		return 1
	}
	defer func() { _ = term.Restore() }()

	installSIGINTHandler(term)

	var opts []vm.Option
	if maxInstructions > 0 {
		opts = append(opts, vm.WithMaxInstructions(maxInstructions))
	}
	emulator := vm.NewEmulator(term, os.Stdout, opts...)

	for _, path := range paths {
		img, err := loader.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load image: %s\n", path)
			return 1
		}
		loader.LoadInto(emulator.Memory(), img)
		if verbose {
			fmt.Fprintf(os.Stderr, "loaded %s at origin 0x%04X\n", path, img.Origin)
		}
	}

	exitCode := emulator.Run()

	if verbose {
		fmt.Fprintf(os.Stderr, "instructions executed: %d\n", emulator.InstructionCount())
	}

	return exitCode
}

// installSIGINTHandler restores the terminal and exits with code 254 on
// SIGINT, the one dedicated goroutine besides main.
func installSIGINTHandler(term *vm.Terminal) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGINT)

	go func() {
		<-sigCh
		_ = term.Restore()
		fmt.Println()
		os.Exit(254)
	}()
}
