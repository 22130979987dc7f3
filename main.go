// Package main is the entry point for the ncu CLI application.
package main

import "github.com/ajxudir/ncu/cmd"

func main() {
	cmd.Execute()
}
