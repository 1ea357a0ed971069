package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

func main() {
	bin, err := exec.LookPath("pertloom")
	if err != nil {
		fmt.Fprintln(os.Stderr, "plm: pertloom not found on PATH")
		os.Exit(1)
	}
	if err := syscall.Exec(bin, append([]string{"pertloom"}, os.Args[1:]...), os.Environ()); err != nil {
		fmt.Fprintf(os.Stderr, "plm: %v\n", err)
		os.Exit(1)
	}
}
