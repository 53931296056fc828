// Package converters provides two-way adapters between the containers of
// the matrix package and gonum (gonum.org/v1/gonum/mat):
//   - ToGonum exposes any float64 matrix.Matrix as a mat.Matrix without copying.
//   - ToGonumDense / FromGonum copy between the two worlds.
//   - ToGonumVec / VectorFromGonum do the same for vectors.
//   - MulVecDense and Dot run sparse kernels against gonum operands.
//
// Use converters to feed compressed operands to gonum factorizations and
// solvers, or to check sparse kernels against gonum's dense ones.
package converters
