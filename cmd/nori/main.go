package main

import "os"

// ビルド時に -ldflags "-X main.version=..." で上書きする
var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
