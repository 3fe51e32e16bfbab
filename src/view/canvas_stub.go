//go:build !ebiten

package view

import "gridlife/src/universe"

//NewCanvas is not available without the ebiten build tag
func NewCanvas() (universe.Viewer, error) {
	return nil, ErrCanvasUnavailable
}
