package internal

import (
	"iter"
)

// IterSeqMap applies fn to every value of an iterator sequence.
func IterSeqMap[T any, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}

// IterSeqLabel pairs every value of an iterator sequence with a fixed key.
func IterSeqLabel[K any, V any](key K, seq iter.Seq[V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for val := range seq {
			if !yield(key, val) {
				return
			}
		}
	}
}

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return
				}
			}
		}
	}
}
