// Package manifest fills in the ${token} placeholders of a manifest template
// with values taken from a project descriptor.
//
// A manifest is a properties file. Only values that consist of exactly one
// placeholder are resolved:
//
//	Main-Class: ${package.mainClass}      resolved
//	Version: v${project.version}          left as is
//
// Placeholders naming an unknown token are left untouched, so they may be
// filled in by a later build step.
package manifest

import (
	"io"
	"regexp"
	"time"

	"github.com/mitsuki31/jmbuilder/pom"
	"github.com/mitsuki31/jmbuilder/properties"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("jmbuilder.manifest")

// IDKey is the manifest key that always resolves to "groupId:artifactId".
const IDKey = "ID"

// TimestampLayout formats maven.build.timestamp.
const TimestampLayout = "2006-01-02T15:04:05Z"

var tokenPattern = regexp.MustCompile(`^\$\{([\w.\-\[\]]+)\}$`)

// Values maps placeholder tokens to their resolved values.
type Values map[string]string

// NewValues collects the tokens a manifest may reference from d. Fields
// missing from the descriptor are left out. now is converted to UTC for
// maven.build.timestamp.
func NewValues(d *pom.Descriptor, now time.Time) Values {
	id := d.ID()
	author := d.Author()
	license := d.License()

	v := Values{}
	set := func(key string, t pom.Text) {
		if s, ok := t.Get(); ok {
			v[key] = s
		}
	}
	property := func(key string) {
		t, err := d.Property(key, false)
		if err == nil {
			set(key, t)
		}
	}

	set("project.name", d.Name())
	set("project.version", d.Version())
	set("project.url", d.URL())
	set("project.groupId", id.GroupID)
	set("project.artifactId", id.ArtifactID)
	set("project.inceptionYear", d.InceptionYear())
	set("project.developers[0].name", author.Name)
	set("project.developers[0].url", author.URL)
	set("project.licenses[0].name", license.Name)
	set("project.licenses[0].url", license.URL)
	property("package.licenseFile")
	property("package.mainClass")
	v["maven.build.timestamp"] = now.UTC().Format(TimestampLayout)

	return v
}

// Token returns the placeholder name when value is exactly one ${token}.
func Token(value string) (string, bool) {
	m := tokenPattern.FindStringSubmatch(value)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Resolve replaces placeholder values of t in place and reports how many
// entries changed. The ID entry becomes "groupId:artifactId" whatever its
// placeholder says.
func Resolve(t *properties.Table, v Values) int {
	n := 0
	for key, value := range t.All() {
		token, ok := Token(value)
		if !ok {
			continue
		}

		if key == IDKey {
			t.Set(key, v["project.groupId"]+":"+v["project.artifactId"])
			n++
			continue
		}

		resolved, ok := v[token]
		if !ok {
			log.Debugf("leaving %s unresolved: unknown token %q", key, token)
			continue
		}
		log.Debugf("resolved %s: %s -> %q", key, token, resolved)
		t.Set(key, resolved)
		n++
	}
	return n
}

// Write writes t as "key: value" lines in insertion order.
func Write(w io.Writer, t *properties.Table) error {
	_, err := t.WriteTo(w)
	return err
}
