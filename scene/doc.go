// Package scene describes a demo as data: which bindable objects exist and which
// button gets which behavior under which binding strategy.
//
// Scenes are YAML or TOML:
//
//	objects:
//	  - id: tony
//	    kind: person
//	    firstName: Tony
//	    lastName: Soprano
//	buttons:
//	  - id: btn-tony
//	    object: tony
//	    behavior: sayName
//	    strategy: wrap
//
// Build constructs the objects in declaration order and registers one handler
// per button on a dispatch.Registry. All dogs in a scene share one external
// slot, so only the last dog declared is ever reported by dog buttons.
package scene
