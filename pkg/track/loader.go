package track

import (
	"fmt"

	"github.com/golangdaddy/pixelrace/pkg/surface"
)

// Loader provides the two bitmaps of a track
type Loader interface {
	Load(t Track) (circuit, function *surface.Image, err error)
}

// DirLoader reads tracks from <Dir>/<name>.png and <Dir>/<name>_function.png
type DirLoader struct {
	Dir string
}

func (l DirLoader) Load(t Track) (*surface.Image, *surface.Image, error) {
	circuit, err := surface.Load(t.CircuitPath(l.Dir))
	if err != nil {
		return nil, nil, fmt.Errorf("track %q circuit: %w", t.Filename, err)
	}
	function, err := surface.Load(t.FunctionPath(l.Dir))
	if err != nil {
		return nil, nil, fmt.Errorf("track %q function map: %w", t.Filename, err)
	}
	if err := surface.SameSize(circuit, function); err != nil {
		return nil, nil, fmt.Errorf("track %q: %w", t.Filename, err)
	}
	return circuit, function, nil
}
