// Package types defines the engine, storage context and channel contracts,
// the device identity and init parameter types, and the standard errors for
// the realmbind host binding.
package types
