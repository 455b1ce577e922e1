// SPDX-License-Identifier: Unlicense OR MIT

/*
Package svg builds the SVG document skeleton for visualization
widgets.

The layer is deliberately thin: it sizes the root element from a
resolved canvas and provides the group and definition plumbing that
widgets hang their drawing on. Serializing and presenting the tree is
the host's concern.
*/
package svg

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/image/colornames"

	"vizui.org/canvas"
	"vizui.org/f32"
)

const xmlns = "http://www.w3.org/2000/svg"

// Document is an SVG document rooted at a canvas-sized viewport.
type Document struct {
	doc   *etree.Document
	root  *etree.Element
	defs  *etree.Element
	group *etree.Element
}

// NewDocument builds the SVG skeleton for a resolved canvas. The
// root element carries the outer canvas size; the drawing group is
// translated to the canvas origin, the left and top insets.
func NewDocument(c canvas.Canvas) *Document {
	doc := etree.NewDocument()
	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", xmlns)
	root.CreateAttr("version", "1.1")
	root.CreateAttr("width", Coord(c.Width))
	root.CreateAttr("height", Coord(c.Height))
	root.CreateAttr("style", "overflow: hidden;")
	defs := root.CreateElement("defs")
	group := root.CreateElement("g")
	if c.Inset.Left != 0 || c.Inset.Top != 0 {
		group.CreateAttr("transform",
			fmt.Sprintf("translate(%s,%s)", Coord(c.Inset.Left), Coord(c.Inset.Top)))
	}
	return &Document{doc: doc, root: root, defs: defs, group: group}
}

// Root returns the <svg> element.
func (d *Document) Root() *etree.Element {
	return d.root
}

// Group returns the drawing group, translated to the canvas origin.
func (d *Document) Group() *etree.Element {
	return d.group
}

// ClipRect adds a <clipPath> definition for rect under id and
// returns its element.
func (d *Document) ClipRect(id string, r f32.Rectangle) *etree.Element {
	clip := d.defs.CreateElement("clipPath")
	clip.CreateAttr("id", id)
	rect := clip.CreateElement("rect")
	rect.CreateAttr("x", Coord(r.Min.X))
	rect.CreateAttr("y", Coord(r.Min.Y))
	rect.CreateAttr("width", Coord(r.Dx()))
	rect.CreateAttr("height", Coord(r.Dy()))
	return clip
}

// ClipGroup clips the drawing group to the definition under id.
func (d *Document) ClipGroup(id string) {
	d.group.CreateAttr("clip-path", "url(#"+id+")")
}

// String serializes the document.
func (d *Document) String() (string, error) {
	return d.doc.WriteToString()
}

// Coord formats a coordinate the way SVG attributes expect: the
// shortest decimal form, no exponent.
func Coord(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// Color resolves an SVG 1.1 color name. Unknown names report
// ok false.
func Color(name string) (c color.RGBA, ok bool) {
	c, ok = colornames.Map[strings.ToLower(name)]
	return c, ok
}
