package main

import "github.com/pavanmanishd/fixedarray/cmd/fixedarray/cmd"

func main() {
	cmd.Execute()
}
