package rainbowgif

import (
	"bufio"
	"context"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/rainbowgif/internal/palette"
	"github.com/gogpu/rainbowgif/internal/parallel"
)

// Render produces the animation frames for a rasterized glyph and its
// outline. Frame i shows hue phase i*FrameStride; phases run from 0 to
// PhaseCount-1. Frames are built on opts.Workers goroutines and returned
// in phase order.
//
// glyph and edge must share bounds. If ctx is cancelled, Render stops
// starting new frames and returns ctx.Err().
func Render(ctx context.Context, glyph, edge *image.Gray, opts Options) ([]*image.NRGBA, error) {
	if err := opts.validateAnimation(); err != nil {
		return nil, err
	}
	b := glyph.Bounds()
	if edge.Bounds() != b {
		return nil, &InvalidInputError{Field: "bitmap size", Reason: "glyph " + b.String() + " and edge " + edge.Bounds().String() + " differ"}
	}

	pool := parallel.NewWorkerPool(opts.Workers)
	defer pool.Close()

	start := time.Now()
	frames := make([]*image.NRGBA, opts.Frames())
	err := pool.ForEach(ctx, len(frames), func(_ context.Context, i int) error {
		gradient, err := GenerateGradient(b.Dy(), b.Dx(), opts.gradient(i*opts.FrameStride))
		if err != nil {
			return err
		}
		// The gradient has origin (0,0); align it with the glyph.
		gradient.Rect = gradient.Rect.Add(b.Min)

		frame, err := Composite(glyph, gradient, edge, opts.EdgeColor)
		if err != nil {
			return err
		}
		frames[i] = frame
		return nil
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("frames rendered",
		"frames", len(frames), "width", b.Dx(), "height", b.Dy(),
		"workers", pool.Workers(), "elapsed", time.Since(start))
	return frames, nil
}

// BuildGIF converts frames into a looping animation. Each frame gets its
// own palette: index 0 transparent, index 1 opts.EdgeColor, the rest fill
// colours. Frames are disposed to the background before the next one is
// drawn.
func BuildGIF(frames []*image.NRGBA, opts Options) (*gif.GIF, error) {
	if len(frames) == 0 {
		return nil, &InvalidInputError{Field: "frames", Reason: "animation has no frames"}
	}
	if opts.Duration < 0 {
		return nil, &InvalidInputError{Field: "duration", Reason: "must not be negative"}
	}
	b := frames[0].Bounds()
	for _, f := range frames[1:] {
		if f.Bounds() != b {
			return nil, &InvalidInputError{Field: "frames", Reason: "frame sizes differ"}
		}
	}

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		Disposal:  make([]byte, len(frames)),
		LoopCount: 0,
	}

	mapper := palette.New(opts.EdgeColor, opts.Quantizer)
	pool := parallel.NewWorkerPool(opts.Workers)
	defer pool.Close()

	delay := opts.delay()
	_ = pool.ForEach(context.Background(), len(frames), func(_ context.Context, i int) error {
		anim.Image[i] = mapper.Paletted(frames[i])
		anim.Delay[i] = delay
		anim.Disposal[i] = gif.DisposalBackground
		return nil
	})
	return anim, nil
}

// Encode writes frames to w as a looping GIF.
func Encode(w io.Writer, frames []*image.NRGBA, opts Options) error {
	anim, err := BuildGIF(frames, opts)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return &IOError{Op: "encode", Err: err}
	}
	return nil
}

// Save writes anim to path. The file is written under a temporary name in
// the same directory and renamed into place, so path never holds a
// partial animation. On failure the temporary file is removed.
func Save(path string, anim *gif.GIF) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = gif.EncodeAll(w, anim); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err = w.Flush(); err != nil {
		return &IOError{Op: "encode", Path: path, Err: err}
	}
	if err = f.Chmod(0o644); err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	if err = f.Sync(); err != nil {
		return &IOError{Op: "sync", Path: path, Err: err}
	}
	if err = f.Close(); err != nil {
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Rename(tmp, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	Logger().Info("animation written", "path", path, "frames", len(anim.Image))
	return nil
}

// Generate runs the whole pipeline: it rasterizes opts.Text, extracts the
// outline, renders and encodes every frame, and saves the result to
// opts.Output. Errors from each stage are returned unchanged.
func Generate(ctx context.Context, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	src, err := LoadFont(opts.FontPath)
	if err != nil {
		return err
	}
	defer src.Close()

	glyph, err := RasterizeText(src, opts.Text, opts.FontSize)
	if err != nil {
		return err
	}
	edge := ExtractEdge(glyph, opts.EdgeIterations)

	frames, err := Render(ctx, glyph, edge, opts)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	anim, err := BuildGIF(frames, opts)
	if err != nil {
		return err
	}
	return Save(opts.Output, anim)
}
