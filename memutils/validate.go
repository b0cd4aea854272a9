package memutils

// Validatable is implemented by types that can check their own invariants. DebugValidate calls
// Validate on them when the debug_mem_utils build tag is present.
type Validatable interface {
	Validate() error
}
