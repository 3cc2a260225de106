// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// Error kinds distinguished by the pipeline. Stage errors wrap one of
// these sentinels so callers can classify failures with errors.Is
// without inspecting messages.
// Per prd001-plan R4.1-R4.4.
var (
	// ErrConfig marks malformed plan or rib table input: missing
	// columns, unparseable numbers, out-of-range values.
	ErrConfig = errors.New("invalid configuration")

	// ErrReference marks a rib row naming an airfoil that is not
	// present in the airfoil directory.
	ErrReference = errors.New("unresolved airfoil reference")

	// ErrFormat marks an airfoil coordinate file that exists but cannot
	// be parsed: bad numbers, truncated surfaces, non-monotonic
	// chord-wise ordering.
	ErrFormat = errors.New("malformed airfoil file")

	// ErrIO marks filesystem failures reading inputs or writing
	// outputs.
	ErrIO = errors.New("file i/o failure")
)
