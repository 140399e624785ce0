// Command thisdemo clicks every button of a scene and prints what each handler
// reports.
//
// Each button is wired to one behavior of one object under one binding strategy
// (see package binder). Buttons wired without a strategy print an
// undefined-receiver error: that is the point of the demo, and the exit code
// stays 0.
//
// Usage
//
//	thisdemo [-scene file] [-v N] [-log file] [-list]
//
// Flags default to the environment (see package config):
//
//	THISBIND_SCENE      scene file (.yaml, .yml, .toml); empty uses the built-in scene
//	THISBIND_VERBOSITY  -4 (silent) .. 2 (debug), default 0
//	THISBIND_LOG_FILE   log destination; empty logs to stderr
//
// Exit codes: 0 on success, 1 on config or scene errors, 2 on usage errors.
//
// Built-in scene output
//
//	btn-tony: Tony's last name is: Soprano
//	btn-paulie: error: binder: undefined receiver for "sayName" (got *dispatch.Element)
//	btn-get-size-dog: Roger's height is: 80
//	btn-get-size-cat: Millie's height is: 40
//	btn-get-size-fish: Fishy's height is: 10
//	btn-sword-material: The Sword is made out of Wood
//	btn-sword-name: error: binder: undefined receiver for "sayName" (got *dispatch.Element)
package main
