package ops

import "math"

// float32 math shims; the engine is float32 throughout, the stdlib is
// float64.

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func expf(x float32) float32 { return float32(math.Exp(float64(x))) }

func logf(x float32) float32 { return float32(math.Log(float64(x))) }

func powf(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
