// Package main is the realmbind CLI entry point.
package main

import "github.com/mesh-intelligence/realmbind/internal/cli"

func main() {
	cli.Execute()
}
