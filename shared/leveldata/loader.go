package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	GroupGround  = "Ground"
	GroupPigs    = "Pigs"
	GroupColumns = "Columns"
	GroupStatics = "Statics"
)

// LoadLayout parses a TMX file into a Layout. It takes an fs.FS so callers
// can pass embed.FS or, in tests, an fstest.MapFS.
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(layout.MapHeight)

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil {
					continue
				}
				points := *o.PolyLines[0].Points
				friction := o.Properties.GetFloat("friction")
				// Each consecutive pair of polyline points is one segment.
				for i := 1; i < len(points); i++ {
					layout.Ground = append(layout.Ground, Segment{
						A:        Point{X: o.X + points[i-1].X, Y: mapH - (o.Y + points[i-1].Y)},
						B:        Point{X: o.X + points[i].X, Y: mapH - (o.Y + points[i].Y)},
						Friction: friction,
					})
				}
			}
		case GroupPigs:
			for _, o := range og.Objects {
				layout.Pigs = append(layout.Pigs, centre(o, mapH))
			}
		case GroupColumns:
			for _, o := range og.Objects {
				layout.Columns = append(layout.Columns, centre(o, mapH))
			}
		case GroupStatics:
			for _, o := range og.Objects {
				c := centre(o, mapH)
				layout.Statics = append(layout.Statics, Rect{X: c.X, Y: c.Y, W: o.Width, H: o.Height})
			}
		}
	}

	// Stable spawn order regardless of how the file was edited
	sort.Slice(layout.Pigs, func(i, j int) bool { return layout.Pigs[i].X < layout.Pigs[j].X })
	sort.Slice(layout.Columns, func(i, j int) bool { return layout.Columns[i].X < layout.Columns[j].X })

	return layout, nil
}

// LoadLayouts loads each path in order.
func LoadLayouts(fsys fs.FS, paths []string) ([]*Layout, error) {
	layouts := make([]*Layout, 0, len(paths))
	for _, path := range paths {
		layout, err := LoadLayout(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}

// centre returns an object's centre in world space. Point objects have no
// size, so their position is already the centre.
func centre(o *tiled.Object, mapH float64) Point {
	return Point{
		X: o.X + o.Width/2,
		Y: mapH - (o.Y + o.Height/2),
	}
}
