// Package buffer provides a reusable float32 scratch buffer and a pool for
// the temporaries used by transforms and frame analysis. Callers always pass
// plain []float32 slices; Buffer only manages the scratch side.
package buffer
