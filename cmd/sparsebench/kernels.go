// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/builder"
	"github.com/katalvlaran/lvlsparse/converters"
	"github.com/katalvlaran/lvlsparse/matrix"
)

// Library labels in the report.
const (
	libSparse = "lvlsparse"
	libGonum  = "gonum"
	libCSR    = "csr"
)

// operands holds one seeded problem in every representation a kernel needs.
type operands struct {
	a, b   *matrix.Compressed[float64]
	dense  *matrix.Dense[float64]
	x      []float64
	ga, gb *mat.Dense
	gd     *mat.Dense
	gx     *mat.VecDense
	ca, cb *csr
}

// newOperands draws two n×n matrices with k non-zeros per line, a dense
// n×n operand and a dense vector, all from seed.
func newOperands(n, k int, o matrix.Orientation, seed uint64) (*operands, error) {
	var (
		ops operands
		err error
	)
	if ops.a, err = builder.RandomCompressed[float64](n, n, k, o, builder.WithSeed(seed)); err != nil {
		return nil, err
	}
	if ops.b, err = builder.RandomCompressed[float64](n, n, k, o, builder.WithSeed(seed+1)); err != nil {
		return nil, err
	}
	if ops.dense, err = builder.RandomDense[float64](n, n, builder.WithSeed(seed+2)); err != nil {
		return nil, err
	}
	xv, err := builder.RandomDense[float64](n, 1, builder.WithSeed(seed+3))
	if err != nil {
		return nil, err
	}
	ops.x = xv.RawData()

	if ops.ga, err = converters.ToGonumDense(ops.a); err != nil {
		return nil, err
	}
	if ops.gb, err = converters.ToGonumDense(ops.b); err != nil {
		return nil, err
	}
	if ops.gd, err = converters.ToGonumDense(ops.dense); err != nil {
		return nil, err
	}
	ops.gx = mat.NewVecDense(n, append([]float64(nil), ops.x...))

	if ops.ca, err = newCSR(ops.a); err != nil {
		return nil, err
	}
	if ops.cb, err = newCSR(ops.b); err != nil {
		return nil, err
	}

	return &ops, nil
}

// impl is one library's rendition of a kernel.
type impl struct {
	lib string
	run func() error
}

// kernel names a benchmarked operation and binds it to operands.
type kernel struct {
	desc  string
	impls func(ops *operands) []impl
}

var kernels = map[string]kernel{
	"add": {
		desc: "sparse += sparse",
		impls: func(ops *operands) []impl {
			var gdst mat.Dense

			return []impl{
				{libSparse, func() error { return ops.a.Clone().AddAssign(ops.b) }},
				{libGonum, func() error { gdst.Add(ops.ga, ops.gb); return nil }},
				{libCSR, func() error { ops.ca.add(ops.cb); return nil }},
			}
		},
	},
	"dadd": {
		desc: "sparse += dense",
		impls: func(ops *operands) []impl {
			var gdst mat.Dense

			return []impl{
				{libSparse, func() error { return ops.a.Clone().AddAssign(ops.dense) }},
				{libGonum, func() error { gdst.Add(ops.ga, ops.gd); return nil }},
			}
		},
	},
	"mul": {
		desc: "sparse *= sparse",
		impls: func(ops *operands) []impl {
			var gdst mat.Dense

			return []impl{
				{libSparse, func() error { return ops.a.Clone().MulAssign(ops.b) }},
				{libGonum, func() error { gdst.Mul(ops.ga, ops.gb); return nil }},
			}
		},
	},
	"mulvec": {
		desc: "sparse · dense vector",
		impls: func(ops *operands) []impl {
			dst := make([]float64, len(ops.x))
			var gdst mat.VecDense

			return []impl{
				{libSparse, func() error { return ops.a.MulVec(dst, ops.x) }},
				{libGonum, func() error { gdst.MulVec(ops.ga, ops.gx); return nil }},
				{libCSR, func() error { ops.ca.mulVec(dst, ops.x); return nil }},
			}
		},
	},
	"transpose": {
		desc: "out-of-place transpose",
		impls: func(ops *operands) []impl {
			var gdst mat.Dense

			return []impl{
				{libSparse, func() error { matrix.TransposeOf(ops.a); return nil }},
				{libGonum, func() error { gdst.CloneFrom(ops.ga.T()); return nil }},
			}
		},
	},
}

// kernelNames returns the registered kernels in a stable order.
func kernelNames() []string {
	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// kernelUsage lists every kernel with its description for the -kernel help.
func kernelUsage() string {
	var b strings.Builder
	b.WriteString("kernel to run: all, or one of")
	for _, name := range kernelNames() {
		fmt.Fprintf(&b, "\n  %-10s %s", name, kernels[name].desc)
	}

	return b.String()
}

// selectKernels resolves a -kernel flag value ("all" or one name).
func selectKernels(name string) ([]string, error) {
	if name == "all" {
		return kernelNames(), nil
	}
	if _, ok := kernels[name]; !ok {
		return nil, fmt.Errorf("unknown kernel %q (have %v)", name, kernelNames())
	}

	return []string{name}, nil
}
