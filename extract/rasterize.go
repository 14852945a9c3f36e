package extract

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
)

// rasterDPI is the render resolution for OCR input. 150 DPI keeps
// Tesseract accurate without producing oversized images.
const rasterDPI = "150"

// NewPdftoppmRasterizer returns a Rasterizer that shells out to the
// pdftoppm binary from poppler-utils. On Ubuntu/Debian:
//
//	apt-get install poppler-utils
func NewPdftoppmRasterizer(binary string) Rasterizer {
	if binary == "" {
		binary = "pdftoppm"
	}
	return func(path string, page int) ([]byte, error) {
		dir, err := os.MkdirTemp("", "outliner-raster-")
		if err != nil {
			return nil, fmt.Errorf("create raster dir: %w", err)
		}
		defer os.RemoveAll(dir)

		prefix := filepath.Join(dir, "page")
		pageNum := strconv.Itoa(page + 1)
		cmd := exec.Command(binary,
			"-png",
			"-r", rasterDPI,
			"-f", pageNum,
			"-l", pageNum,
			"-singlefile",
			path, prefix)
		if out, err := cmd.CombinedOutput(); err != nil {
			return nil, fmt.Errorf("pdftoppm page %d: %w: %s", page+1, err, out)
		}

		return os.ReadFile(prefix + ".png")
	}
}
