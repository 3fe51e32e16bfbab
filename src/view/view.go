//Package view contains the collaborators which display the universe and control it:
//the terminal UI, the headless console printer and the pixel canvas
package view

import "errors"

//ErrCanvasUnavailable is returned by NewCanvas when the binary is built without the ebiten tag
var ErrCanvasUnavailable = errors.New("canvas is not available, rebuild with -tags ebiten")
