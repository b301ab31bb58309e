// Package main is the bosestat command.
package main

import "github.com/sarchlab/bosestat/bosestat/cmd"

func main() {
	cmd.Execute()
}
