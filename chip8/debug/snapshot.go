package debug

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/valerio/go-chip8/chip8/video"
)

// SnapshotScale is the pixel scale used for PNG snapshots.
const SnapshotScale = 8

var (
	onColor  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	offColor = color.RGBA{A: 0xFF}
)

// TakeSnapshot handles the snapshot key for backends, writing to the
// current directory.
func TakeSnapshot(frame *video.FrameBuffer) {
	if frame == nil {
		slog.Warn("No frame data available for snapshot")
		return
	}

	if _, err := SaveFramePNGToDir(frame, "chip8_snapshot", ""); err != nil {
		slog.Error("Failed to save snapshot", "error", err)
	}
}

// EncodePNG writes frame as a PNG, each CHIP-8 pixel scaled to a
// scale x scale square.
func EncodePNG(w io.Writer, frame *video.FrameBuffer, scale int) error {
	if scale < 1 {
		scale = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, video.Width*scale, video.Height*scale))
	for y := 0; y < video.Height*scale; y++ {
		for x := 0; x < video.Width*scale; x++ {
			c := offColor
			if frame.GetPixel(x/scale, y/scale) != 0 {
				c = onColor
			}
			img.SetRGBA(x, y, c)
		}
	}

	return png.Encode(w, img)
}

// SaveFramePNGToDir saves a frame as a timestamped PNG in directory, or in
// the working directory when directory is empty. It returns the file path.
func SaveFramePNGToDir(frame *video.FrameBuffer, baseName, directory string) (string, error) {
	outputDir := directory
	if outputDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		outputDir = cwd
	}

	timestamp := time.Now().Format("20060102_150405")
	filePath := filepath.Join(outputDir, fmt.Sprintf("%s_%s.png", baseName, timestamp))

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	defer file.Close()

	if err := EncodePNG(file, frame, SnapshotScale); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}

	slog.Info("Snapshot saved", "path", filePath, "size", fmt.Sprintf("%dx%d", video.Width*SnapshotScale, video.Height*SnapshotScale), "format", "PNG")
	return filePath, nil
}
