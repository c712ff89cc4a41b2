// Package core holds configuration and numeric helpers shared by the
// generator, analysis and CLI packages.
package core
