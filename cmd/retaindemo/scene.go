// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/retainui/retain/f32"
	"github.com/retainui/retain/layout"
	"github.com/retainui/retain/view"
	"github.com/retainui/retain/widget"
)

// scene describes a window and its views.
type scene struct {
	Title      string     `yaml:"title"`
	Background string     `yaml:"background"`
	Views      []viewDesc `yaml:"views"`
}

type viewDesc struct {
	Name        string     `yaml:"name"`
	Frame       [4]float32 `yaml:"frame"`
	Color       string     `yaml:"color"`
	Border      string     `yaml:"border"`
	BorderWidth float32    `yaml:"borderWidth"`
	Mode        string     `yaml:"mode"`
	Hidden      bool       `yaml:"hidden"`
	Children    []viewDesc `yaml:"children"`
}

const defaultScene = `
title: retaindemo
background: black
views:
  - name: desk
    frame: [0, 0, 80, 24]
    color: darkslategray
    mode: FollowLeft|FollowRight|FollowTop|FollowBottom
    children:
      - name: left
        frame: [2, 1, 30, 12]
        color: steelblue
        border: white
        borderWidth: 1
        mode: FollowLeft|FollowTop
      - name: right
        frame: [48, 1, 78, 12]
        color: indianred
        mode: FollowRight|FollowTop
      - name: status
        frame: [0, 22, 80, 24]
        color: dimgray
        mode: FollowLeft|FollowRight|FollowBottom
  - name: popup
    frame: [20, 6, 60, 16]
    color: goldenrod
    border: black
    borderWidth: 1
    mode: FollowHCenter|FollowVCenter
`

func loadScene(path string) (*scene, error) {
	if path == "" {
		return parseScene([]byte(defaultScene))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	s, err := parseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func parseScene(data []byte) (*scene, error) {
	s := new(scene)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

// background returns the background color of s, black if unset.
func (s *scene) background() (color.NRGBA, error) {
	if s.Background == "" {
		return color.NRGBA{A: 0xff}, nil
	}
	return widget.ParseColor(s.Background)
}

// build creates the top-level views of s, bottom first.
func (s *scene) build() ([]*view.View, error) {
	var views []*view.View
	for _, vs := range s.Views {
		v, err := vs.build()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (vs *viewDesc) build() (*view.View, error) {
	mode, ok := layout.ParseResizingMode(vs.Mode)
	if !ok {
		return nil, fmt.Errorf("view %q: invalid resizing mode %q", vs.Name, vs.Mode)
	}
	b := &widget.Box{BorderWidth: vs.BorderWidth}
	var err error
	if vs.Color != "" {
		if b.Color, err = widget.ParseColor(vs.Color); err != nil {
			return nil, fmt.Errorf("view %q: %w", vs.Name, err)
		}
	}
	if vs.Border != "" {
		if b.Border, err = widget.ParseColor(vs.Border); err != nil {
			return nil, fmt.Errorf("view %q: %w", vs.Name, err)
		}
	}
	fr := f32.Rect(vs.Frame[0], vs.Frame[1], vs.Frame[2], vs.Frame[3])
	if fr.Empty() {
		return nil, fmt.Errorf("view %q: empty frame %v", vs.Name, fr)
	}
	v := widget.NewBox(b, fr, mode)
	for i := range vs.Children {
		c, err := vs.Children[i].build()
		if err != nil {
			return nil, err
		}
		v.AddChild(c, -1)
	}
	if vs.Hidden {
		v.Hide()
	}
	return v, nil
}
