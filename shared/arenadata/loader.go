package arenadata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	arenaGroup  = "Arena"
	fieldObject = "field"
)

// Load parses one TMX preset. It takes an fs.FS so callers can pass an
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (Preset, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return Preset{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	p := Preset{
		Name:        name,
		Title:       name,
		FieldWidth:  float64(m.Width * m.TileWidth),
		FieldHeight: float64(m.Height * m.TileHeight),
		Fever:       true,
	}

	found := false
	for _, og := range m.ObjectGroups {
		if og.Name != arenaGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Name != fieldObject {
				continue
			}
			found = true
			if o.Width > 0 && o.Height > 0 {
				p.FieldWidth, p.FieldHeight = o.Width, o.Height
			}
			if title := o.Properties.GetString("title"); title != "" {
				p.Title = title
			}
			p.MarginRatio = o.Properties.GetFloat("marginRatio")
			p.WallRatio = o.Properties.GetFloat("wallRatio")
			p.OrbMargin = o.Properties.GetFloat("orbMargin")
			if o.Properties.GetString("fever") == "off" {
				p.Fever = false
			}
		}
	}
	if !found {
		return Preset{}, fmt.Errorf("TMX %s: no %q object in %q group", tmxPath, fieldObject, arenaGroup)
	}
	if p.FieldWidth <= 0 || p.FieldHeight <= 0 {
		return Preset{}, fmt.Errorf("TMX %s: empty field", tmxPath)
	}
	return p, nil
}

// LoadAll parses every .tmx file in dir, sorted by name.
func LoadAll(fsys fs.FS, dir string) ([]Preset, error) {
	paths, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("list arenas: %w", err)
	}
	sort.Strings(paths)

	presets := make([]Preset, 0, len(paths))
	for _, p := range paths {
		preset, err := Load(fsys, p)
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}
	return presets, nil
}

// Find returns the preset with the given name.
func Find(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
