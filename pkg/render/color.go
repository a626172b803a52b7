// pkg/render/color.go
package render

import "image/color"

// addChannel — сложение с насыщением
func addChannel(a, b uint8) uint8 {
	sum := int(a) + int(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// AddRGB — аддитивное смешивание: каждый канал насыщается на 255 независимо.
func AddRGB(dst, src color.RGBA) color.RGBA {
	return color.RGBA{
		R: addChannel(dst.R, src.R),
		G: addChannel(dst.G, src.G),
		B: addChannel(dst.B, src.B),
		A: addChannel(dst.A, src.A),
	}
}

// Visible сообщает, даст ли цвет хоть какой-то вклад при отрисовке.
func Visible(c color.RGBA) bool {
	return c.A > 0
}
