// Package main is the entry point for envguard, a declarative environment
// variable validator.
package main

func main() {
	Execute()
}
