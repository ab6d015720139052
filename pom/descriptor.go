// Package pom reads Maven project descriptors (pom.xml).
//
// The descriptor is kept as a generic element tree so that arbitrary paths
// can be queried with dotted keys:
//
//	d, err := pom.Parse("pom.xml")
//	if err != nil {
//	    return err
//	}
//	d.Version()                          // Text{"1.2.0", true}
//	d.Get("project.build.finalName")     // *Node or nil
//	d.Property("package.mainClass", false)
//
// Lookups for missing elements return nil or None; they never fail.
package pom

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitsuki31/jmbuilder/charset"
	"github.com/mitsuki31/jmbuilder/jmerrors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jmbuilder.pom")

type Option func(*parser)

// WithEncoding sets the character encoding of the descriptor. Without it the
// encoding declared in the XML prolog is honoured, defaulting to UTF-8.
func WithEncoding(name string) Option {
	return func(p *parser) {
		p.encoding = name
	}
}

func WithName(name string) Option {
	return func(p *parser) {
		p.name = name
	}
}

type parser struct {
	name     string
	encoding string
}

// Descriptor is a parsed project descriptor.
type Descriptor struct {
	doc     *Node
	project *Node
}

// Parse reads the descriptor at path.
func Parse(path string, opts ...Option) (*Descriptor, error) {
	if err := jmerrors.CheckFile("pom.Parse", path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	return ParseReader(bytes.NewReader(data), append([]Option{WithName(path)}, opts...)...)
}

// ParseReader reads a descriptor from r.
func ParseReader(r io.Reader, opts ...Option) (*Descriptor, error) {
	if r == nil {
		return nil, jmerrors.InvalidArgument("pom.ParseReader", "reader cannot be nil")
	}

	p := &parser{}
	for _, opt := range opts {
		opt(p)
	}

	doc, err := p.build(r)
	if err != nil {
		return nil, err
	}
	if len(doc.Children) == 0 {
		return nil, jmerrors.Parse("pom.ParseReader", p.name, "no root element", nil)
	}

	return &Descriptor{doc: doc, project: doc.Child("project")}, nil
}

func (p *parser) build(r io.Reader) (*Node, error) {
	if p.encoding != "" {
		decoded, err := charset.NewReader(r, p.encoding)
		if err != nil {
			return nil, err
		}
		r = decoded
	}

	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(label string, input io.Reader) (io.Reader, error) {
		// Already transcoded to UTF-8.
		if p.encoding != "" {
			return input, nil
		}
		return charset.NewReader(input, label)
	}

	doc := &Node{}
	stack := []*Node{doc}
	for {
		token, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, jmerrors.Parse("pom.ParseReader", p.name, "malformed XML", err)
		}

		top := stack[len(stack)-1]
		switch t := token.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local, Attr: t.Copy().Attr}
			top.appendChild(n)
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if top != doc {
				top.appendText(string(t))
			}
		}
	}
	return doc, nil
}

// Project returns the <project> root element, or nil when the document has
// another root.
func (d *Descriptor) Project() *Node {
	return d.project
}

// Get resolves an element path. A single argument is a dotted key, so
// Get("project.name") and Get("project", "name") are equivalent. With more
// than one argument each one is a literal tag name, which reaches tags such
// as <package.mainClass>:
//
//	d.Get("properties", "package.mainClass")
//
// Each segment is looked up below the previous one with Node.Find, starting
// at the document; the first segment that fails short-circuits to nil.
func (d *Descriptor) Get(path ...string) *Node {
	if len(path) == 1 {
		path = splitKey(path[0])
	}
	if len(path) == 0 {
		return nil
	}
	return d.get(path...)
}

func splitKey(key string) []string {
	var out []string
	for _, s := range strings.Split(key, ".") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// get looks up a fixed path given as separate tag names, without splitting
// on dots.
func (d *Descriptor) get(segments ...string) *Node {
	n := d.doc
	for _, s := range segments {
		n = n.Find(s)
		if n == nil {
			return nil
		}
	}
	return n
}

func (d *Descriptor) Name() Text {
	return TextOf(d.get("project", "name"))
}

func (d *Descriptor) Version() Text {
	return TextOf(d.get("project", "version"))
}

func (d *Descriptor) URL() Text {
	return TextOf(d.get("project", "url"))
}

func (d *Descriptor) InceptionYear() Text {
	return TextOf(d.get("project", "inceptionYear"))
}

// ArtifactID identifies a project by group and artifact.
type ArtifactID struct {
	GroupID    Text
	ArtifactID Text
}

// String returns the "groupId:artifactId" coordinate. Missing parts are
// left empty.
func (a ArtifactID) String() string {
	return a.GroupID.Value + ":" + a.ArtifactID.Value
}

func (d *Descriptor) ID() ArtifactID {
	return ArtifactID{
		GroupID:    TextOf(d.get("project", "groupId")),
		ArtifactID: TextOf(d.get("project", "artifactId")),
	}
}

// Developer is the first entry of <developers>.
type Developer struct {
	ID   Text
	Name Text
	URL  Text
}

func (d *Descriptor) Author() Developer {
	dev := d.get("project", "developers", "developer")
	return Developer{
		ID:   TextOf(dev.Child("id")),
		Name: TextOf(dev.Child("name")),
		URL:  TextOf(dev.Child("url")),
	}
}

// License is the first entry of <licenses>.
type License struct {
	Name         Text
	URL          Text
	Distribution Text
}

func (d *Descriptor) License() License {
	lic := d.get("project", "licenses", "license")
	return License{
		Name:         TextOf(lic.Child("name")),
		URL:          TextOf(lic.Child("url")),
		Distribution: TextOf(lic.Child("distribution")),
	}
}

// Property looks up key in the <properties> section. A leading
// "properties." is ignored. With useDots the key is split into nested tag
// names; without it the whole key names a single tag, as in
// <package.mainClass>, falling back to the nested form when no such tag
// exists.
func (d *Descriptor) Property(key string, useDots bool) (Text, error) {
	if key == "" {
		return None, jmerrors.InvalidArgument("pom.Descriptor.Property", "key cannot be empty")
	}
	key = strings.TrimPrefix(key, "properties.")

	if !useDots {
		if n := d.get("properties", key); n != nil {
			return TextOf(n), nil
		}
	}

	segments := strings.Split(key, ".")
	if segments[0] != "properties" {
		segments = append([]string{"properties"}, segments...)
	}
	return TextOf(d.get(segments...)), nil
}
