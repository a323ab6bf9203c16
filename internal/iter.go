package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// IterSeq2Concat concatenates key/value sequences in order.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Merge collapses a key/value sequence so each key appears once,
// holding its last value, yielded in key order.
func IterSeq2Merge[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		merged := maps.Collect(seq)
		for _, key := range slices.Sorted(maps.Keys(merged)) {
			if !yield(key, merged[key]) {
				return
			}
		}
	}
}
