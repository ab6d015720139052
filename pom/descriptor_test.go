package pom

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitsuki31/jmbuilder/jmerrors"
)

const samplePOM = `<?xml version="1.0" encoding="UTF-8"?>
<!-- Top-level comment -->
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org.example.parent</groupId>
    <artifactId>parent</artifactId>
    <version>9.9.9</version>
  </parent>
  <groupId>com.github.mitsuki31</groupId>
  <artifactId>jmatrix</artifactId>
  <version>1.2.0</version>
  <name>JMatrix</name>
  <url>https://github.com/mitsuki31/jmatrix</url>
  <inceptionYear>2023</inceptionYear>
  <licenses>
    <license>
      <name>Apache License 2.0</name>
      <url>https://www.apache.org/licenses/LICENSE-2.0</url>
      <distribution>repo</distribution>
    </license>
  </licenses>
  <developers>
    <developer>
      <id>mitsuki31</id>
      <name>Ryuu Mitsuki</name>
      <url>https://github.com/mitsuki31</url>
    </developer>
    <developer>
      <id>other</id>
      <name>Someone Else</name>
    </developer>
  </developers>
  <properties>
    <!-- <package.mainClass>commented.Out</package.mainClass> -->
    <package.licenseFile>LICENSE</package.licenseFile>
    <package.mainClass>com.mitsuki.jmatrix.Main</package.mainClass>
    <project.build.sourceEncoding>UTF-8</project.build.sourceEncoding>
    <nested>
      <deep>value</deep>
    </nested>
  </properties>
</project>
`

func mustParse(t *testing.T, src string, opts ...Option) *Descriptor {
	t.Helper()
	d, err := ParseReader(strings.NewReader(src), opts...)
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}
	return d
}

func TestAccessors(t *testing.T) {
	d := mustParse(t, samplePOM)

	tests := []struct {
		name string
		got  Text
		want Text
	}{
		{"name", d.Name(), Some("JMatrix")},
		{"version", d.Version(), Some("1.2.0")},
		{"url", d.URL(), Some("https://github.com/mitsuki31/jmatrix")},
		{"inceptionYear", d.InceptionYear(), Some("2023")},
		{"groupId", d.ID().GroupID, Some("com.github.mitsuki31")},
		{"artifactId", d.ID().ArtifactID, Some("jmatrix")},
		{"author id", d.Author().ID, Some("mitsuki31")},
		{"author name", d.Author().Name, Some("Ryuu Mitsuki")},
		{"author url", d.Author().URL, Some("https://github.com/mitsuki31")},
		{"license name", d.License().Name, Some("Apache License 2.0")},
		{"license url", d.License().URL, Some("https://www.apache.org/licenses/LICENSE-2.0")},
		{"license distribution", d.License().Distribution, Some("repo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := d.ID().String(); got != "com.github.mitsuki31:jmatrix" {
		t.Errorf("ID().String() = %q, want %q", got, "com.github.mitsuki31:jmatrix")
	}
	if d.Project() == nil || d.Project().Name != "project" {
		t.Errorf("Project() = %v, want the <project> element", d.Project())
	}
}

func TestMinimalDescriptor(t *testing.T) {
	d := mustParse(t, `<project><groupId>com.example</groupId><artifactId>app</artifactId></project>`)

	want := ArtifactID{GroupID: Some("com.example"), ArtifactID: Some("app")}
	if got := d.ID(); got != want {
		t.Errorf("ID() = %+v, want %+v", got, want)
	}

	for name, got := range map[string]Text{
		"name":          d.Name(),
		"version":       d.Version(),
		"url":           d.URL(),
		"inceptionYear": d.InceptionYear(),
		"author name":   d.Author().Name,
		"license url":   d.License().URL,
	} {
		if got.Valid {
			t.Errorf("%s = %v, want None", name, got)
		}
	}
}

func TestGet(t *testing.T) {
	d := mustParse(t, samplePOM)

	tests := []struct {
		path []string
		want Text
	}{
		{[]string{"project.developers.developer.name"}, Some("Ryuu Mitsuki")},
		{[]string{"project", "developers", "developer", "id"}, Some("mitsuki31")},
		{[]string{"project", "parent", "version"}, Some("9.9.9")},
		{[]string{"project.parent.version"}, Some("9.9.9")},
		{[]string{"properties", "package.licenseFile"}, Some("LICENSE")},
		{[]string{"project", "properties", "package.mainClass"}, Some("com.mitsuki.jmatrix.Main")},
		{[]string{"project", "parent.version"}, None},
		{[]string{"properties.nested.deep"}, Some("value")},
		{[]string{"modelVersion"}, Some("4.0.0")},
		{[]string{"project.scm.url"}, None},
		{[]string{"missing.version"}, None},
		{[]string{""}, None},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.path, "|"), func(t *testing.T) {
			if got := TextOf(d.Get(tt.path...)); got != tt.want {
				t.Errorf("Get(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestTextTrimmed(t *testing.T) {
	d := mustParse(t, "<project>\n  <name>\n    JMatrix \t\n  </name>\n  <url>   </url>\n</project>")

	if got := d.Name(); got != Some("JMatrix") {
		t.Errorf("Name() = %q, want %q", got, "JMatrix")
	}
	if got := d.URL(); got != Some("") {
		t.Errorf("URL() = %v, want an empty but present value", got)
	}
}

func TestCommentsStripped(t *testing.T) {
	d := mustParse(t, `<project><!-- hidden --><name>A<!-- x -->B</name><properties><!-- <k>v</k> --></properties></project>`)

	if got := d.Name(); got != Some("AB") {
		t.Errorf("Name() = %v, want %v", got, Some("AB"))
	}
	if got, _ := d.Property("k", true); got.Valid {
		t.Errorf("Property(k) = %v, want None", got)
	}
	if got := d.Project().Text(); strings.Contains(got, "hidden") {
		t.Errorf("Project().Text() = %q, comment text leaked", got)
	}
}

func TestProperty(t *testing.T) {
	d := mustParse(t, samplePOM)

	tests := []struct {
		key     string
		useDots bool
		want    Text
	}{
		{"package.mainClass", false, Some("com.mitsuki.jmatrix.Main")},
		{"properties.package.licenseFile", false, Some("LICENSE")},
		{"project.build.sourceEncoding", false, Some("UTF-8")},
		{"nested.deep", true, Some("value")},
		{"properties.nested.deep", true, Some("value")},
		{"nested.deep", false, Some("value")},
		{"package.mainClass", true, None},
		{"missing", false, None},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := d.Property(tt.key, tt.useDots)
			if err != nil {
				t.Fatalf("Property(%q, %v) error = %v", tt.key, tt.useDots, err)
			}
			if got != tt.want {
				t.Errorf("Property(%q, %v) = %v, want %v", tt.key, tt.useDots, got, tt.want)
			}
		})
	}

	if _, err := d.Property("", true); !errors.Is(err, jmerrors.ErrInvalidArgument) {
		t.Errorf("Property(\"\") error = %v, want ErrInvalidArgument", err)
	}
}

func TestNestedPropertyWithoutDots(t *testing.T) {
	d := mustParse(t, `<project><properties><package><mainClass>com.example.Main</mainClass></package></properties></project>`)

	got, err := d.Property("package.mainClass", false)
	if err != nil {
		t.Fatal(err)
	}
	if got != Some("com.example.Main") {
		t.Errorf("Property(package.mainClass) = %v, want %v", got, Some("com.example.Main"))
	}
}

func TestParseErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Parse(filepath.Join(dir, "pom.xml")); !errors.Is(err, jmerrors.ErrFileNotFound) {
		t.Errorf("Parse(missing) error = %v, want ErrFileNotFound", err)
	}
	if _, err := Parse(""); !errors.Is(err, jmerrors.ErrInvalidArgument) {
		t.Errorf("Parse(\"\") error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Parse(dir); !errors.Is(err, jmerrors.ErrIsDirectory) {
		t.Errorf("Parse(dir) error = %v, want ErrIsDirectory", err)
	}

	for _, src := range []string{"<project><name>x</project>", "", "<!-- only a comment -->"} {
		if _, err := ParseReader(strings.NewReader(src)); !errors.Is(err, jmerrors.ErrParse) {
			t.Errorf("ParseReader(%q) error = %v, want ErrParse", src, err)
		}
	}
}

func TestParseUnreadable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for root")
	}
	path := filepath.Join(t.TempDir(), "pom.xml")
	if err := os.WriteFile(path, []byte(samplePOM), 0o000); err != nil {
		t.Fatal(err)
	}

	_, err := Parse(path)
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("Parse() error = %v, want fs.ErrPermission", err)
	}
	if errors.Is(err, jmerrors.ErrInvalidArgument) {
		t.Errorf("Parse() error = %v, read failure reported as ErrInvalidArgument", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pom.xml")
	if err := os.WriteFile(path, []byte(samplePOM), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := d.Version(); got != Some("1.2.0") {
		t.Errorf("Version() = %v, want %v", got, Some("1.2.0"))
	}
}

func TestEncodings(t *testing.T) {
	// <name>Café</name> in ISO-8859-1.
	latin1 := []byte("<project><name>Caf\xe9</name></project>")

	d, err := ParseReader(bytes.NewReader(latin1), WithEncoding("ISO-8859-1"))
	if err != nil {
		t.Fatalf("ParseReader(WithEncoding) error = %v", err)
	}
	if got := d.Name(); got != Some("Café") {
		t.Errorf("Name() = %v, want %v", got, Some("Café"))
	}

	declared := append([]byte(`<?xml version="1.0" encoding="ISO-8859-1"?>`), latin1...)
	d, err = ParseReader(bytes.NewReader(declared))
	if err != nil {
		t.Fatalf("ParseReader(declared encoding) error = %v", err)
	}
	if got := d.Name(); got != Some("Café") {
		t.Errorf("Name() = %v, want %v", got, Some("Café"))
	}
}
