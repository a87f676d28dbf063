//go:build js && wasm

// Command sweepsnake-wasm registers the SweepGame class for a browser host.
//
//	GOOS=js GOARCH=wasm go build -o sweepsnake.wasm ./cmd/sweepsnake-wasm
package main

import "sweepsnake/internal/wasmbind"

func main() {
	wasmbind.Register()
	select {}
}
