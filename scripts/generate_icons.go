//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{128, 128, 128, 255}},   // Серый
		{"icon_playing.png", color.RGBA{88, 166, 255, 255}}, // Синий
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

// generateIcon рисует круг с вырезанным треугольником "play".
func generateIcon(path string, c color.RGBA) error {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	centerX, centerY := size/2, size/2
	radius := 26.0

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if inPlayTriangle(x, y) {
				continue
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

// inPlayTriangle треугольник с вершинами (24,18), (24,46), (46,32).
func inPlayTriangle(x, y int) bool {
	if x < 24 || x > 46 {
		return false
	}
	half := float64(46-x) * 14 / 22
	dy := float64(y - 32)
	return dy <= half && dy >= -half
}
