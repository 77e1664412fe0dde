// Package generator produces the localized capsule images for every
// language and screen resolution.
package generator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fwupd/fwupd-images/catalog"
	"github.com/fwupd/fwupd-images/common/file"
	"github.com/fwupd/fwupd-images/compression"
	"github.com/fwupd/fwupd-images/raster"
)

// Generator renders the label into the locale directory.
type Generator struct {
	opts       Options
	translator catalog.Translator
	renderer   *raster.Renderer
	codec      compression.Codec
	template   *file.Template
}

// New creates a Generator. Missing fonts default to the embedded sans font.
func New(opts Options) (*Generator, error) {
	if opts.Label == "" {
		return nil, fmt.Errorf("empty label")
	}
	if opts.LocaleDir == "" {
		return nil, fmt.Errorf("empty locale directory")
	}
	if opts.Domain == "" {
		opts.Domain = catalog.DefaultDomain
	}
	if len(opts.Languages) == 0 {
		opts.Languages = []string{catalog.SourceLanguage}
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if len(opts.Fonts) == 0 {
		fonts, err := raster.DefaultFonts()
		if err != nil {
			return nil, err
		}
		opts.Fonts = fonts
	}

	codec, err := compression.NewManager().Get(opts.Compression)
	if err != nil {
		return nil, err
	}

	return &Generator{
		opts:       opts,
		translator: catalog.New(opts.LocaleDir, opts.Domain),
		renderer:   raster.NewRenderer(opts.Fonts),
		codec:      codec,
		template:   file.NewTemplate(opts.LocaleDir),
	}, nil
}

// SetTranslator replaces the gettext catalog, mainly for tests.
func (g *Generator) SetTranslator(t catalog.Translator) {
	g.translator = t
}

// Suffix is the file suffix of generated images, e.g. "bmp.gz".
func (g *Generator) Suffix() string {
	if s := g.codec.Suffix(); s != "" {
		return "bmp." + s
	}
	return "bmp"
}

// Close releases the codec's encoder and decoder state.
func (g *Generator) Close() error {
	if c, ok := g.codec.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Plan lists every job for the translated languages, in rendering order,
// and the languages skipped for lack of a translation.
func (g *Generator) Plan() ([]Job, []string) {
	entries, skipped := catalog.Resolve(g.translator, g.opts.Label, g.opts.Languages)

	jobs := make([]Job, 0, len(entries)*len(Resolutions))
	for _, e := range entries {
		for _, res := range Resolutions {
			jobs = append(jobs, Job{
				Language:   e.Language,
				Text:       e.Text,
				Resolution: res,
				Path:       g.template.Path(e.Language, res.Width, res.Height, g.Suffix()),
			})
		}
	}
	return jobs, skipped
}

// Generate renders every missing image. Images already on disk are left
// untouched, even when the label or font changed since they were written.
//
// The first error stops the run; errors.Is(err, raster.ErrMissingFont)
// reports that no font could draw a label.
func (g *Generator) Generate(ctx context.Context, progressCallback ProgressCallback) (*Result, error) {
	jobs, skipped := g.Plan()
	result := &Result{Skipped: skipped}

	var mu sync.Mutex
	completed := 0
	report := func(info ProgressInfo) {
		mu.Lock()
		defer mu.Unlock()
		completed++
		switch info.Status {
		case StatusWritten:
			result.Written++
		case StatusExists:
			result.Existing++
		}
		if progressCallback != nil {
			info.Completed = completed
			info.Total = len(jobs)
			progressCallback(info)
		}
	}

	workers := g.opts.Workers
	if workers > runtime.NumCPU()*2 {
		workers = runtime.NumCPU() * 2
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, job := range jobs {
		if egCtx.Err() != nil {
			break
		}
		job := job
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			info, err := g.run(job)
			if err != nil {
				return err
			}
			report(info)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return result, err
	}
	return result, ctx.Err()
}

func (g *Generator) run(job Job) (ProgressInfo, error) {
	if file.Exists(job.Path) {
		return ProgressInfo{Job: job, Status: StatusExists}, nil
	}

	img, err := g.renderer.Render(job.Language, job.Text, job.Resolution.Height)
	if err != nil {
		return ProgressInfo{}, fmt.Errorf("%s %dx%d: %w", job.Language, job.Resolution.Width, job.Resolution.Height, err)
	}

	data, err := g.codec.Compress(img.BMP)
	if err != nil {
		return ProgressInfo{}, fmt.Errorf("compress %s: %w", job.Path, err)
	}

	if err := file.WriteFile(job.Path, data); err != nil {
		return ProgressInfo{}, fmt.Errorf("write %s: %w", job.Path, err)
	}

	return ProgressInfo{
		Job:    job,
		Status: StatusWritten,
		Width:  img.Width,
		Height: img.Height,
		Size:   len(data),
	}, nil
}
