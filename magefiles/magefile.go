//go:build mage

// Package main provides build targets for the macpaperd project using Mage.
//
// Usage:
//
//	mage build           Compile the macpaperd binary to bin/
//	mage test:all        Run all tests (unit + integration)
//	mage test:unit       Run only unit tests (exclude tests/)
//	mage lint            Run golangci-lint
//	mage clean           Remove build artifacts
//	mage install         Install macpaperd to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "macpaperd"
	binaryDir  = "bin"
	cmdDir     = "./cmd/macpaperd"
)

// Build compiles the macpaperd binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	return sh.Copy(filepath.Join(gopath, "bin", binaryName), filepath.Join(binaryDir, binaryName))
}
