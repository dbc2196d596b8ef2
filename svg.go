package svg

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// PathStore is the document a warp reads path descriptions from and
// writes results to.
type PathStore interface {
	LoadPath(id string) (string, error)
	StorePath(id, d string) error
	// ForEachChild calls fn for every path below the group, in document
	// order. Iteration stops at the first error.
	ForEachChild(groupID string, fn func(id, d string) error) error
}

// GroupStore is a PathStore that can also add new paths to a group.
type GroupStore interface {
	PathStore
	AppendPath(groupID, id, d string) error
}

// Element is a node of an Svg document: a *Group or a *Path.
type Element interface {
	elementID() string
}

// Svg represents an SVG document reduced to its groups and paths. Other
// elements are dropped while decoding.
type Svg struct {
	Name      string
	ViewBox   string
	Width     string
	Height    string
	Elements  []Element
	Transform *mt.Transform
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	TransformString string
	Transform       mt.Transform
	Elements        []Element
	Parent          *Group
	Owner           *Svg
}

// Path is an SVG XML path element
type Path struct {
	XMLName         xml.Name `xml:"path"`
	ID              string   `xml:"id,attr,omitempty"`
	D               string   `xml:"d,attr"`
	TransformString string   `xml:"transform,attr,omitempty"`
	Fill            string   `xml:"fill,attr,omitempty"`
	Stroke          string   `xml:"stroke,attr,omitempty"`
	StrokeWidth     string   `xml:"stroke-width,attr,omitempty"`
	group           *Group
}

func (g *Group) elementID() string { return g.ID }
func (p *Path) elementID() string { return p.ID }

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	g.Transform = mt.Identity()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := ParseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = t
		}
	}

	elements, err := decodeElements(decoder, g.Owner, g)
	if err != nil {
		return fmt.Errorf("error decoding element of Group: %w", err)
	}
	g.Elements = elements
	return nil
}

// decodeElements reads child elements up to the enclosing end tag.
func decodeElements(decoder *xml.Decoder, owner *Svg, parent *Group) ([]Element, error) {
	var elements []Element
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "g":
				g := &Group{Parent: parent, Owner: owner}
				if err = decoder.DecodeElement(g, &tok); err != nil {
					return nil, err
				}
				elements = append(elements, g)
			case "path":
				p := &Path{group: parent}
				if err = decoder.DecodeElement(p, &tok); err != nil {
					return nil, err
				}
				p.XMLName = xml.Name{}
				elements = append(elements, p)
			default:
				if err = decoder.Skip(); err != nil {
					return nil, err
				}
			}
		case xml.EndElement:
			return elements, nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "viewBox":
			s.ViewBox = attr.Value
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		}
	}

	elements, err := decodeElements(decoder, s, nil)
	if err != nil {
		return fmt.Errorf("error decoding element of SVG struct: %w", err)
	}
	s.Elements = elements
	return nil
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (s *Svg) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "svg"}
	start.Attr = appendAttrs(nil,
		"xmlns", svgNamespace,
		"viewBox", s.ViewBox,
		"width", s.Width,
		"height", s.Height,
	)
	return encodeElements(e, start, s.Elements)
}

// MarshalXML implements the encoding.xml.Marshaler interface
func (g *Group) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "g"}
	start.Attr = appendAttrs(nil, "id", g.ID, "transform", g.TransformString)
	return encodeElements(e, start, g.Elements)
}

func encodeElements(e *xml.Encoder, start xml.StartElement, elements []Element) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, el := range elements {
		if err := e.Encode(el); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// appendAttrs appends name/value pairs, skipping empty values.
func appendAttrs(attrs []xml.Attr, kv ...string) []xml.Attr {
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: kv[i]}, Value: kv[i+1]})
	}
	return attrs
}

// ParseSvg parses an SVG string into an SVG struct. A positive scale
// multiplies every coordinate on Flatten, a negative one divides by it.
func ParseSvg(str string, name string, scale float64) (*Svg, error) {
	return decodeSvg(xml.NewDecoder(strings.NewReader(str)), name, scale)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string, scale float64) (*Svg, error) {
	return decodeSvg(xml.NewDecoder(r), name, scale)
}

func decodeSvg(dec *xml.Decoder, name string, scale float64) (*Svg, error) {
	svg := &Svg{Name: name, Transform: mt.NewTransform()}
	if scale > 0 {
		svg.Transform.Scale(scale, scale)
	}
	if scale < 0 {
		svg.Transform.Scale(1.0/-scale, 1.0/-scale)
	}

	if err := dec.Decode(svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	Logger().Debug("parsed svg document", "name", name, "elements", len(svg.Elements))
	return svg, nil
}

// WriteTo encodes the document as indented XML.
func (s *Svg) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")
	if err := enc.Encode(s); err != nil {
		return cw.n, err
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// walk visits every element depth first until fn returns false.
func walk(elements []Element, fn func(Element) bool) bool {
	for _, el := range elements {
		if !fn(el) {
			return false
		}
		if g, ok := el.(*Group); ok && !walk(g.Elements, fn) {
			return false
		}
	}
	return true
}

func (s *Svg) findPath(id string) (*Path, error) {
	var found *Path
	walk(s.Elements, func(el Element) bool {
		if p, ok := el.(*Path); ok && p.ID == id {
			found = p
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: path %q", ErrNotFound, id)
	}
	return found, nil
}

func (s *Svg) findGroup(id string) (*Group, error) {
	var found *Group
	walk(s.Elements, func(el Element) bool {
		if g, ok := el.(*Group); ok && g.ID == id {
			found = g
			return false
		}
		return true
	})
	if found == nil {
		return nil, fmt.Errorf("%w: group %q", ErrNotFound, id)
	}
	return found, nil
}

// LoadPath returns the d attribute of the path with the given id.
func (s *Svg) LoadPath(id string) (string, error) {
	p, err := s.findPath(id)
	if err != nil {
		return "", err
	}
	return p.D, nil
}

// StorePath replaces the d attribute of the path with the given id.
func (s *Svg) StorePath(id, d string) error {
	p, err := s.findPath(id)
	if err != nil {
		return err
	}
	p.D = d
	return nil
}

// ForEachChild calls fn for every path nested anywhere below the group.
func (s *Svg) ForEachChild(groupID string, fn func(id, d string) error) error {
	g, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	walk(g.Elements, func(el Element) bool {
		if p, ok := el.(*Path); ok {
			err = fn(p.ID, p.D)
		}
		return err == nil
	})
	return err
}

// AppendPath adds a new path as the last child of the group.
func (s *Svg) AppendPath(groupID, id, d string) error {
	g, err := s.findGroup(groupID)
	if err != nil {
		return err
	}
	g.Elements = append(g.Elements, &Path{ID: id, D: d, group: g})
	return nil
}

// pathTransform composes the document scale, every enclosing group's
// transform and the path's own transform.
func (s *Svg) pathTransform(p *Path) (mt.Transform, error) {
	t := mt.Identity()
	if p.TransformString != "" {
		pt, err := ParseTransform(p.TransformString)
		if err != nil {
			return t, fmt.Errorf("path %q: %w", p.ID, err)
		}
		t = pt
	}
	for g := p.group; g != nil; g = g.Parent {
		t = mt.MultiplyTransforms(g.Transform, t)
	}
	if s.Transform != nil {
		t = mt.MultiplyTransforms(*s.Transform, t)
	}
	return t, nil
}

// Flatten bakes every transform into the path coordinates and removes
// the transform attributes, so that all paths share one coordinate
// space. Path data is rewritten in the serialized form.
func (s *Svg) Flatten() error {
	var err error
	walk(s.Elements, func(el Element) bool {
		p, ok := el.(*Path)
		if !ok {
			return true
		}
		var t mt.Transform
		if t, err = s.pathTransform(p); err != nil {
			return false
		}
		var in Instructions
		if in, err = ParsePath(p.D, WithTransform(t)); err != nil {
			err = fmt.Errorf("path %q: %w", p.ID, err)
			return false
		}
		p.D = Serialize(in)
		p.TransformString = ""
		return true
	})
	if err != nil {
		return err
	}

	walk(s.Elements, func(el Element) bool {
		if g, ok := el.(*Group); ok {
			g.TransformString = ""
			g.Transform = mt.Identity()
		}
		return true
	})
	s.Transform = mt.NewTransform()
	return nil
}
