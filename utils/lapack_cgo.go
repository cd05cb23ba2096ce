//go:build cgo && netlib
// +build cgo,netlib

package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	netblas "gonum.org/v1/netlib/blas/netlib"
)

// Building with -tags netlib swaps the pure-Go BLAS used by the dense
// factorization path for the system OpenBLAS/LAPACK via netlib.
func init() {
	blas64.Use(netblas.Implementation{})
	fmt.Println("Using netlib to accelerate BLAS")
}
