// SPDX-License-Identifier: EPL-2.0

package utils

const pcm16Scale = 32768.0

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM.
// Out of range input is clamped. The scale is 2^15 so that
// Float32ToInt16(Int16ToFloat32(v)) == v for every int16 v.
func Float32ToInt16(x float32) int16 {
	v := x * pcm16Scale
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}
	return int16(v)
}

// Int16ToFloat32 converts 16-bit PCM to a float sample in [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Scale
}

// IntToFloat32 normalizes a signed integer sample of the given bit
// depth. Unknown depths are treated as 16-bit.
func IntToFloat32(v int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32(v) / 128.0
	case 24:
		return float32(v) / 8388608.0
	case 32:
		return float32(float64(v) / 2147483648.0)
	default:
		return float32(v) / pcm16Scale
	}
}
