package main

import (
	"os"
	"slices"
	"syscall"
	"testing"
)

func TestShutdownSignals(t *testing.T) {
	if slices.Contains(shutdownSignals, os.Kill) {
		t.Error("os.Kill cannot be trapped")
	}
	if !slices.Contains(shutdownSignals, os.Signal(syscall.SIGTERM)) {
		t.Error("SIGTERM not handled")
	}
	if !slices.Contains(shutdownSignals, os.Interrupt) {
		t.Error("interrupt not handled")
	}
}
