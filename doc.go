// Package blurkernel computes coefficients for separable Gaussian blur
// passes that rely on bilinear texture filtering.
//
// # Algorithm
//
// For a half-radius h the kernel radius is r = 2h. Row 2r of Pascal's
// triangle is built with exact integers and normalized by its sum 2^(2r),
// giving a binomial approximation of a Gaussian. Its right half, center
// first, forms the discrete coefficients c[0..r].
//
// Every odd index i pairs c[i] with c[i+1] into one bilinear tap:
//
//	weight = c[i] + c[i+1]
//	offset = i + c[i+1]/weight
//
// A fetch at offset with linear filtering blends both texels in the right
// proportion, so a pass needs 2h+1 fetches instead of 2r+1.
//
// # Quick Start
//
//	k, err := blurkernel.Generate(4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(k.Center, k.Weights(), k.Offsets())
//
// Or print the values the way shader constant declarations expect them:
//
//	_ = blurkernel.Write(os.Stdout, k)
//
// # Precision
//
// Binomial coefficients outgrow int64 at row 64, so rows are built with
// math/big and converted to float64 once, during normalization. Weights and
// offsets stay float64; [Write] rounds them to float32 only when printing.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package blurkernel
