// Package pid classifies particle identifiers (lund ids) and holds the
// process-wide block registry that maps a reconstruction block name to its
// declared capacity, daughter-slot width, and the set of lund ids it carries.
//
// Everything here is a read-only, immutable table built once at package
// init time and safe to share by reference across goroutines — there is no
// mutation API. Classification is by |PID| membership in one of three fixed
// sets (final-state, undetectable, acceptable-photon-mother); the block
// registry is the reference configuration from the upstream producer.
package pid
