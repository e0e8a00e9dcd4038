// Package glfixture holds the bindings generated from testdata/foobar so the
// behaviour of the synthesized constructors can be exercised at run time.
package glfixture

//go:generate go run ../../cmd/glad-gen --bindings ../../testdata/foobar/bindings.go --package glfixture --output bindings_gen.go --skip-native
