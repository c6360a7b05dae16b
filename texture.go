package pinboard

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
)

// Source supplies the pixels for an image. Load is called once, off the
// event loop, by LoadTexture.
type Source interface {
	Load(ctx context.Context) (image.Image, error)
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(ctx context.Context) (image.Image, error)

// Load calls f(ctx).
func (f SourceFunc) Load(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// FileSource decodes an image file from disk.
func FileSource(path string) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return decode(path, data)
	})
}

// FSSource decodes an image from a file system, typically an embed.FS.
func FSSource(fsys fs.FS, name string) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		return decode(name, data)
	})
}

// ImageSource wraps an already decoded image.
func ImageSource(img image.Image) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		if img == nil {
			return nil, fmt.Errorf("load image: nil image")
		}
		return img, nil
	})
}

func decode(name string, data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Texture is the pixel data of one image, loaded asynchronously. The loader
// goroutine only publishes the result and closes done; everything that reacts
// to the load runs on the event loop through Ready.
type Texture struct {
	done chan struct{}
	img  image.Image
	err  error
}

// LoadTexture starts loading src in the background and returns immediately.
func LoadTexture(ctx context.Context, src Source) *Texture {
	t := &Texture{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		if err := ctx.Err(); err != nil {
			t.err = err
			return
		}
		t.img, t.err = src.Load(ctx)
	}()
	return t
}

// Ready reports whether loading has finished, successfully or not.
func (t *Texture) Ready() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Image returns the decoded pixels, or nil while loading or after a failure.
func (t *Texture) Image() image.Image {
	if !t.Ready() {
		return nil
	}
	return t.img
}

// Err returns the load error, if any. It is nil while loading.
func (t *Texture) Err() error {
	if !t.Ready() {
		return nil
	}
	return t.err
}

// Wait blocks until loading finishes or ctx is done.
func (t *Texture) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
