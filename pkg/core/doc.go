// Package core defines the shared language of the date engine.
//
// This package contains:
//   - The Dialect selector and Interval value type
//   - The parsed date/time specs produced by pkg/parser
//   - The Calendar capability interface implemented by pkg/adapters
//   - The resolution engine turning specs into concrete instants
//   - The classified error taxonomy
//
// The Golden Rule: pkg/core imports ONLY pkg/token and stdlib.
// All other packages depend on core, not the reverse.
package core
