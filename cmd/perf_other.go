//go:build !linux

package cmd

import "fmt"

func countInstructions(f func() error) error {
	fmt.Println("hardware instruction counting is only available on linux")
	return f()
}
