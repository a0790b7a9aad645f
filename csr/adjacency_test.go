// SPDX-License-Identifier: MIT

// Package csr_test: symmetrized adjacency view tests.
package csr_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/csrband/csr"
)

// TestAdjacencyList_Symmetrizes ensures one-sided entries induce edges in
// both directions: A[u][v] != 0 alone makes u and v mutual neighbors.
func TestAdjacencyList_Symmetrizes(t *testing.T) {
	// Only (0,1) and (1,2) stored, no transposed entries, no diagonal.
	m, err := csr.NewFromCOO(3, 3, []int{0, 1}, []int{1, 2}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	adj, err := m.AdjacencyList()
	if err != nil {
		t.Fatalf("AdjacencyList: %v", err)
	}
	want := [][]int{{1}, {0, 2}, {1}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("adjacency = %v; want %v", adj, want)
	}
}

// TestAdjacencyList_MirroredPairNotDoubled: storing both (0,1) and (1,0)
// yields the same single undirected edge.
func TestAdjacencyList_MirroredPairNotDoubled(t *testing.T) {
	m, err := csr.NewFromCOO(2, 2, []int{0, 1}, []int{1, 0}, []float64{1, 1})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	adj, err := m.AdjacencyList()
	if err != nil {
		t.Fatalf("AdjacencyList: %v", err)
	}
	want := [][]int{{1}, {0}}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("adjacency = %v; want %v", adj, want)
	}
}

// TestAdjacencyList_SelfLoopsExcluded: a diagonal-only vertex is isolated.
func TestAdjacencyList_SelfLoopsExcluded(t *testing.T) {
	m, err := csr.NewFromCOO(3, 3, []int{1}, []int{1}, []float64{7})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	adj, err := m.AdjacencyList()
	if err != nil {
		t.Fatalf("AdjacencyList: %v", err)
	}
	for v, nbrs := range adj {
		if len(nbrs) != 0 {
			t.Errorf("vertex %d: neighbors = %v; want none", v, nbrs)
		}
	}
}

// TestAdjacencyList_SortedNeighbors: lists come out ascending regardless of
// storage order.
func TestAdjacencyList_SortedNeighbors(t *testing.T) {
	m, err := csr.NewFromCOO(4, 4,
		[]int{0, 0, 0},
		[]int{3, 1, 2},
		[]float64{1, 1, 1})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	adj, err := m.AdjacencyList()
	if err != nil {
		t.Fatalf("AdjacencyList: %v", err)
	}
	if want := []int{1, 2, 3}; !reflect.DeepEqual(adj[0], want) {
		t.Errorf("adj[0] = %v; want %v", adj[0], want)
	}
}

// TestAdjacencyList_NonSquare: the view shares row/column index space, so a
// rectangular matrix is rejected.
func TestAdjacencyList_NonSquare(t *testing.T) {
	m, err := csr.NewFromCOO(2, 3, []int{0}, []int{2}, []float64{1})
	if err != nil {
		t.Fatalf("NewFromCOO: %v", err)
	}
	if _, err = m.AdjacencyList(); !errors.Is(err, csr.ErrNonSquare) {
		t.Errorf("want ErrNonSquare, got %v", err)
	}
}
