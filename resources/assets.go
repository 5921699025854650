package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Icon identifies a generated tray icon.
type Icon string

const (
	IconActive Icon = "active"
	IconPaused Icon = "paused"
	IconSlow   Icon = "slow"
)

const iconSize = 32

var iconCache sync.Map

type iconStyle struct {
	fill  color.NRGBA
	glyph string
}

var iconStyles = map[Icon]iconStyle{
	IconActive: {fill: color.NRGBA{R: 232, G: 190, B: 66, A: 255}, glyph: "A"},
	IconPaused: {fill: color.NRGBA{R: 140, G: 140, B: 140, A: 255}, glyph: "P"},
	IconSlow:   {fill: color.NRGBA{R: 86, G: 156, B: 214, A: 255}, glyph: "S"},
}

// TrayIcon returns a Fyne resource for the given icon.
func TrayIcon(icon Icon) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(icon); ok {
		return cached.(fyne.Resource), nil
	}

	style, ok := iconStyles[icon]
	if !ok {
		return nil, fmt.Errorf("load icon %s: unknown icon", icon)
	}
	data, err := renderIcon(style)
	if err != nil {
		return nil, fmt.Errorf("load icon %s: %w", icon, err)
	}

	resource := fyne.NewStaticResource(string(icon)+".png", data)
	iconCache.Store(icon, resource)
	return resource, nil
}

// MustTrayIcon returns a Fyne resource or panics on error.
func MustTrayIcon(icon Icon) fyne.Resource {
	resource, err := TrayIcon(icon)
	if err != nil {
		panic(err)
	}
	return resource
}

// renderIcon draws a filled disc with a letter in the middle.
func renderIcon(style iconStyle) ([]byte, error) {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	center := float64(iconSize-1) / 2
	radius := float64(iconSize)/2 - 1
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			if dx*dx+dy*dy <= radius*radius {
				img.SetNRGBA(x, y, style.fill)
			}
		}
	}

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.NRGBA{A: 255}),
		Face: face,
	}
	width := drawer.MeasureString(style.glyph)
	metrics := face.Metrics()
	height := metrics.Ascent + metrics.Descent
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(iconSize) - width) / 2,
		Y: (fixed.I(iconSize)-height)/2 + metrics.Ascent,
	}
	drawer.DrawString(style.glyph)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
