// Copyright 2023 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap_test

import (
	stdheap "container/heap"
	"math/rand"
	"testing"

	"cloudeng.io/heaps/heap"
)

type intSlice []int

func (h intSlice) Len() int           { return len(h) }
func (h intSlice) Less(i, j int) bool { return h[i] < h[j] }
func (h intSlice) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *intSlice) Push(v any) {
	*h = append(*h, v.(int))
}

func (h *intSlice) Pop() (v any) {
	old := *h
	n := len(old)
	v = old[n-1]
	*h = old[:n-1]
	return
}

func uniformRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	r := make([]int, n)
	for i := range r {
		r[i] = rnd.Intn(10000)
	}
	return r
}

func zipfRand(seed int64, n int) []int {
	rnd := rand.New(rand.NewSource(seed)) // #nosec: G404
	gen := rand.NewZipf(rnd, 3.0, 1.1, 1<<30)
	r := make([]int, n)
	for i := range r {
		r[i] = int(gen.Uint64())
	}
	return r
}

const benchmarkInputSize = 10000

func benchmarkStdHeap(b *testing.B, keys []int) {
	h := make(intSlice, 0, len(keys))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			stdheap.Push(&h, k)
		}
		for h.Len() > 0 {
			_ = stdheap.Pop(&h).(int)
		}
	}
}

func benchmarkQueue[H comparable](b *testing.B, q heap.Queue[int, H], keys []int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, k := range keys {
			q.Insert(k)
		}
		for !q.Empty() {
			_, _, _ = q.ExtractTop()
		}
	}
}

// benchmarkAugment inserts all of the keys, moves every key towards the
// top of the heap and then extracts them all.
func benchmarkAugment[H comparable](b *testing.B, q heap.Queue[int, H], keys []int) {
	handles := make([]H, len(keys))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j, k := range keys {
			handles[j] = q.Insert(k)
		}
		for j, h := range handles {
			_ = q.AugmentKey(h, keys[j]-10000)
		}
		for !q.Empty() {
			_, _, _ = q.ExtractTop()
		}
	}
}

func BenchmarkStdHeapDup(b *testing.B) {
	benchmarkStdHeap(b, make([]int, benchmarkInputSize))
}

func BenchmarkStdHeapRand(b *testing.B) {
	benchmarkStdHeap(b, uniformRand(0, benchmarkInputSize))
}

func BenchmarkStdHeapZipf(b *testing.B) {
	benchmarkStdHeap(b, zipfRand(0, benchmarkInputSize))
}

func BenchmarkBinaryDup(b *testing.B) {
	benchmarkQueue[int](b, heap.NewMinBinary[int](heap.WithSliceCap[int](benchmarkInputSize)), make([]int, benchmarkInputSize))
}

func BenchmarkBinaryRand(b *testing.B) {
	benchmarkQueue[int](b, heap.NewMinBinary[int](heap.WithSliceCap[int](benchmarkInputSize)), uniformRand(0, benchmarkInputSize))
}

func BenchmarkBinaryZipf(b *testing.B) {
	benchmarkQueue[int](b, heap.NewMinBinary[int](heap.WithSliceCap[int](benchmarkInputSize)), zipfRand(0, benchmarkInputSize))
}

func BenchmarkFibonacciDup(b *testing.B) {
	benchmarkQueue[heap.FibonacciHandle[int]](b, heap.NewMinFibonacci[int](), make([]int, benchmarkInputSize))
}

func BenchmarkFibonacciRand(b *testing.B) {
	benchmarkQueue[heap.FibonacciHandle[int]](b, heap.NewMinFibonacci[int](), uniformRand(0, benchmarkInputSize))
}

func BenchmarkFibonacciZipf(b *testing.B) {
	benchmarkQueue[heap.FibonacciHandle[int]](b, heap.NewMinFibonacci[int](), zipfRand(0, benchmarkInputSize))
}

func BenchmarkFibonacciAugment(b *testing.B) {
	benchmarkAugment[heap.FibonacciHandle[int]](b, heap.NewMinFibonacci[int](), uniformRand(0, benchmarkInputSize))
}

func BenchmarkPairingDup(b *testing.B) {
	benchmarkQueue[heap.PairingHandle[int]](b, heap.NewMinPairing[int](), make([]int, benchmarkInputSize))
}

func BenchmarkPairingRand(b *testing.B) {
	benchmarkQueue[heap.PairingHandle[int]](b, heap.NewMinPairing[int](), uniformRand(0, benchmarkInputSize))
}

func BenchmarkPairingZipf(b *testing.B) {
	benchmarkQueue[heap.PairingHandle[int]](b, heap.NewMinPairing[int](), zipfRand(0, benchmarkInputSize))
}

func BenchmarkPairingAugment(b *testing.B) {
	benchmarkAugment[heap.PairingHandle[int]](b, heap.NewMinPairing[int](), uniformRand(0, benchmarkInputSize))
}
