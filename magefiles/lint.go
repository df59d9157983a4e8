//go:build mage

package main

import "github.com/magefile/mage/sh"

const binLint = "golangci-lint"

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Vet runs go vet across the module.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Fmt checks gofmt compliance without rewriting files.
func Fmt() error {
	return sh.RunV("gofmt", "-l", ".")
}
