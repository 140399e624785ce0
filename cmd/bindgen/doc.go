// Command bindgen generates constructors that pre-bind a type's handlers.
//
// Eager pre-binding means: at construction, fuse the new object into a handler
// for each behavior and store that handler on the object, shadowing the unbound
// method. Written by hand it looks like
//
//	c := &Cat{Name: name, Height: height}
//	c.LogHeight = binder.Bind(c, (*Cat).logHeight)
//
// bindgen writes that wiring for you from a small *.bind.json spec kept next to
// the type.
//
// Spec format (*.bind.json)
//
//	{
//	  "package": "zoo",
//	  "implType": "Cat",
//	  "constructor": "NewCat",
//	  "funcName": "NewCatBound",
//	  "bound": [
//	    { "field": "LogHeight", "method": "logHeight" },
//	    { "field": "Meow",      "method": "meow" }
//	  ]
//	}
//
// funcName defaults to New<implType>Bound. imports.binder overrides the binder
// import path.
//
// Typical go:generate usage
//
// Put this in the owner Go file (same package directory as the spec):
//
//	//go:generate go run github.com/sghaida/thisbind/cmd/bindgen -spec ./cat.bind.json -out ./cat_bind.gen.go
//
// Generated API
//
//	func NewCatBound(<constructor params>) *Cat
//
// The generated function forwards its parameters to the constructor, then
// assigns binder.Bind(obj, (*Cat).<method>) to each listed field. Handler fields
// must have type binder.Handler and methods the signature func() (string, error).
//
// Imports are taken from the owner file only when a forwarded parameter type
// needs them; the binder import is always present.
package main
