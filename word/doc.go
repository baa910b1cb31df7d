// Package word defines the fixed-width unsigned integer types used to move
// data in and out of the emulated register file and memory.
//
// Go has no operator overloading, so each type exposes the handful of named
// operations the register file needs (Lane) and an explicit little-endian
// byte encoding for memory (Scalar). U8 through U64 are named native
// integers; U128 is a pair of limbs; U256 and U512 are built on
// github.com/holiman/uint256.
package word
