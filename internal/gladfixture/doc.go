// Package gladfixture holds the bindings generated from testdata/glad, a
// trimmed real loader with grouped constants, base types and opaque structs.
package gladfixture

//go:generate go run ../../cmd/glad-gen --bindings ../../testdata/glad/bindings.go --package gladfixture --output bindings_gen.go --skip-native
