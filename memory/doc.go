// Package memory is a sparse, byte addressable memory model.
//
// The whole 64-bit address space reads as zero. Storage is allocated in
// granularity sized, aligned blocks on first write, and blocks whose ends
// touch are merged into one segment.
package memory
