//go:build js || wasm

package console

import (
	"syscall/js"
)

func Debug(args ...interface{}) {
	console := js.Global().Get("console")
	console.Call("debug", args...)
}

func Log(args ...interface{}) {
	console := js.Global().Get("console")
	console.Call("log", args...)
}

func Warn(args ...interface{}) {
	console := js.Global().Get("console")
	console.Call("warn", args...)
}

func Error(args ...interface{}) {
	console := js.Global().Get("console")
	console.Call("error", args...)
}
