package cpu

import (
	"github.com/born-ml/gradtape/internal/tensor"
)

// broadcastStrides computes strides for reading a tensor of inShape while iterating
// over outShape. Dimensions of size 1 and missing leading dimensions get stride 0.
func broadcastStrides(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)

	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		switch {
		case inIdx < 0:
			strides[i] = 0
		case inShape[inIdx] == 1:
			strides[i] = 0
		default:
			strides[i] = origStrides[inIdx]
		}
	}

	return strides
}

// flatIndex maps a flat index over outStrides to the flat index of a broadcast input.
func flatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}

func binaryVectorized[T tensor.Float](dst, a, b []T, f func(x, y T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func binaryBroadcast[T tensor.Float](dst, a, b []T, aShape, bShape, outShape tensor.Shape, f func(x, y T) T) {
	outStrides := outShape.ComputeStrides()
	aStrides := broadcastStrides(aShape, outShape)
	bStrides := broadcastStrides(bShape, outShape)

	for i := range dst {
		dst[i] = f(a[flatIndex(i, outStrides, aStrides)], b[flatIndex(i, outStrides, bStrides)])
	}
}

// expandInto copies src (shaped srcShape) into every broadcast position of dst.
func expandInto[T tensor.Float](dst, src []T, srcShape, dstShape tensor.Shape) {
	dstStrides := dstShape.ComputeStrides()
	srcStrides := broadcastStrides(srcShape, dstShape)
	for i := range dst {
		dst[i] = src[flatIndex(i, dstStrides, srcStrides)]
	}
}

// reduceInto accumulates src (shaped srcShape) into dst, whose shape broadcasts to srcShape.
func reduceInto[T tensor.Float](dst, src []T, dstShape, srcShape tensor.Shape) {
	for i := range dst {
		dst[i] = 0
	}
	srcStrides := srcShape.ComputeStrides()
	dstStrides := broadcastStrides(dstShape, srcShape)
	for i, v := range src {
		dst[flatIndex(i, srcStrides, dstStrides)] += v
	}
}

func add[T tensor.Float](x, y T) T { return x + y }

func mul[T tensor.Float](x, y T) T { return x * y }
