// Package transform is the transformation core: it maps the closed set
// of request variants onto engine-native sampler subtrees.
//
// One Transformer exists per variant, selected through a Registry keyed
// by request kind. Every transformer follows the same sequence: guard
// the variant, acquire a fresh node from the factory, name it after the
// request, copy properties in source order, encode parameters (for the
// variants that carry them), and append the assertion subtree last.
//
// A request routed to the wrong transformer fails fast with a
// TypeMismatchError before any node is created; a silent no-op here
// would corrupt the generated tree undetected.
//
// The package also owns the two wire-format encodings shared by all
// variants: the chooseRandom encoding for multi-valued parameters and
// the two-decimal think-time token.
package transform
