// Package gl resolves OpenGL driver entry points at runtime without cgo.
//
// The package loads the platform's native driver library through purego (or
// the Windows loader), walks specification-declared alias chains so commands
// promoted from extension to core resolve against whichever symbol the
// active driver actually exports, and dispatches calls through a thin layer
// with optional per-call logging and driver error checking.
//
// A Context ties the pieces together for one native rendering context:
//
//	ctx, err := gl.New(gl.WithErrorCheck(true))
//	if err != nil {
//		log.Fatal(err)
//	}
//	version, err := ctx.Call("GetString", gl.VERSION)
package gl
