// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/lvlsparse/matrix"

// csr is the plain three-array CSR baseline: no slack, no growth, no
// orientation. Kernels over it show the cost of the engine's bookkeeping.
type csr struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	values     []float64
}

// newCSR packs m into CSR, converting column-major operands first.
func newCSR(m *matrix.Compressed[float64]) (*csr, error) {
	src := m
	if m.Orientation() != matrix.RowMajor {
		var err error
		if src, err = matrix.FromMatrix[float64](m, matrix.RowMajor); err != nil {
			return nil, err
		}
	}
	out := &csr{
		rows:   src.Rows(),
		cols:   src.Cols(),
		rowPtr: make([]int, 1, src.Rows()+1),
		colIdx: make([]int, 0, src.NonZeros()),
		values: make([]float64, 0, src.NonZeros()),
	}
	for l := 0; l < src.Lines(); l++ {
		for _, e := range src.Line(l) {
			out.colIdx = append(out.colIdx, e.Index)
			out.values = append(out.values, e.Value)
		}
		out.rowPtr = append(out.rowPtr, len(out.values))
	}

	return out, nil
}

// mulVec computes dst = a·x.
func (a *csr) mulVec(dst, x []float64) {
	for i := 0; i < a.rows; i++ {
		var sum float64
		for p := a.rowPtr[i]; p < a.rowPtr[i+1]; p++ {
			sum += a.values[p] * x[a.colIdx[p]]
		}
		dst[i] = sum
	}
}

// add returns a+b with both operands sharing a shape.
func (a *csr) add(b *csr) *csr {
	out := &csr{
		rows:   a.rows,
		cols:   a.cols,
		rowPtr: make([]int, 1, a.rows+1),
		colIdx: make([]int, 0, len(a.values)+len(b.values)),
		values: make([]float64, 0, len(a.values)+len(b.values)),
	}
	for i := 0; i < a.rows; i++ {
		p, q := a.rowPtr[i], b.rowPtr[i]
		for p < a.rowPtr[i+1] || q < b.rowPtr[i+1] {
			switch {
			case q == b.rowPtr[i+1] || (p < a.rowPtr[i+1] && a.colIdx[p] < b.colIdx[q]):
				out.colIdx = append(out.colIdx, a.colIdx[p])
				out.values = append(out.values, a.values[p])
				p++
			case p == a.rowPtr[i+1] || b.colIdx[q] < a.colIdx[p]:
				out.colIdx = append(out.colIdx, b.colIdx[q])
				out.values = append(out.values, b.values[q])
				q++
			default:
				out.colIdx = append(out.colIdx, a.colIdx[p])
				out.values = append(out.values, a.values[p]+b.values[q])
				p++
				q++
			}
		}
		out.rowPtr = append(out.rowPtr, len(out.values))
	}

	return out
}
