// Package cli constructs the termswap command-line interface, wiring the
// Cobra command hierarchy, the layered configuration loader and structured
// logging.
package cli
