package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed update rate the demo runs at.
	TPS = 60
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
