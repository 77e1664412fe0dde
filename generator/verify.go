package generator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwupd/fwupd-images/raster"
)

// Check is the verification outcome of one expected image.
type Check struct {
	Job    Job
	Width  int
	Height int
	Size   int

	// Missing is set when nothing exists at Job.Path.
	Missing bool
	Err     error
}

// Valid reports whether the image exists and decodes.
func (c Check) Valid() bool {
	return !c.Missing && c.Err == nil
}

// Verify decompresses and decodes every image Plan expects.
func (g *Generator) Verify() ([]Check, error) {
	jobs, _ := g.Plan()
	checks := make([]Check, 0, len(jobs))

	for _, job := range jobs {
		check := Check{Job: job}
		data, err := os.ReadFile(job.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			check.Missing = true
		case err != nil:
			return checks, err
		default:
			check.Size = len(data)
			check.Width, check.Height, check.Err = g.decode(data)
		}
		checks = append(checks, check)
	}
	return checks, nil
}

func (g *Generator) decode(data []byte) (int, int, error) {
	raw, err := g.codec.Decompress(data)
	if err != nil {
		return 0, 0, fmt.Errorf("decompress: %w", err)
	}
	img, err := raster.DecodeBMP(raw)
	if err != nil {
		return 0, 0, fmt.Errorf("decode bmp: %w", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), nil
}
