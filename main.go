package main

// Compiled with tinygo for the VSC wasm target. main never runs on chain;
// the host invokes the exported entry points in exports.go directly.
func main() {}
