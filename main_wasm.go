//go:build js && wasm

package main

import (
	"syscall/js"

	"toyc/internal/compiler"
)

func main() {
	js.Global().Set("toycCompile", js.FuncOf(compile))
	js.Global().Set("toycWasmVersion", version)
	println("toyc WASM checker ready")
	<-make(chan struct{})
}

const version = "0.1.0"

func compile(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, debug: bool)",
		}
	}

	result := compiler.Compile(&compiler.Options{
		Code:       args[0].String(),
		Debug:      args[1].Bool(),
		LogFormat:  compiler.HTML,
		CollectAll: true,
	})

	return map[string]any{
		"success": result.Success,
		"output":  result.Output,
	}
}
