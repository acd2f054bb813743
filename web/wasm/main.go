//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-dft/internal/webdemo"
)

var (
	engine = webdemo.NewEngine(3)
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("parse", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.ValueOf(map[string]any{"error": "parse needs a string"})
		}
		return js.ValueOf(engine.Parse(args[0].String()))
	}))

	// run(op, x, h, n, k, [extra]) where extra may carry {sample, inverse}.
	api.Set("run", export(func(args []js.Value) any {
		if len(args) < 1 {
			return js.ValueOf(map[string]any{"error": "run needs an operation"})
		}
		c := webdemo.Call{
			Op: args[0].String(),
			X:  stringArg(args, 1),
			H:  stringArg(args, 2),
			N:  intArg(args, 3),
			K:  intArg(args, 4),
		}
		if len(args) > 5 && args[5].Type() == js.TypeObject {
			extra := args[5]
			if v := extra.Get("sample"); v.Type() == js.TypeNumber {
				c.Sample = v.Int()
			}
			if v := extra.Get("inverse"); v.Type() == js.TypeBoolean {
				c.Inverse = v.Bool()
			}
		}
		return js.ValueOf(engine.Run(c))
	}))

	api.Set("operations", export(func(_ []js.Value) any {
		return js.ValueOf(engine.Operations())
	}))

	api.Set("setPrecision", export(func(args []js.Value) any {
		if len(args) > 0 && args[0].Type() == js.TypeNumber {
			engine.SetPrecision(args[0].Int())
		}
		return engine.Precision()
	}))

	js.Global().Set("AlgoDFT", api)
	select {}
}

func stringArg(args []js.Value, i int) string {
	if i >= len(args) || args[i].Type() != js.TypeString {
		return ""
	}
	return args[i].String()
}

func intArg(args []js.Value, i int) int {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return 0
	}
	return args[i].Int()
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
