package addon

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// MetadataFilename is the addon descriptor every addon must carry at its
// root. The platform defines exactly one descriptor name, so it is a fixed
// literal rather than a configurable pattern.
const MetadataFilename = "addon.xml"

// Metadata is the read-only root node of a parsed addon descriptor. It is
// parsed once per validation pass and shared by reference with every check.
type Metadata struct {
	root  string
	attrs map[string]string
}

// LoadMetadata parses the addon descriptor found under addonPath. The whole
// document is decoded so that a descriptor with malformed trailing content is
// rejected, not just one with a malformed root element.
func LoadMetadata(addonPath string) (*Metadata, error) {
	f, err := os.Open(filepath.Join(addonPath, MetadataFilename))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", MetadataFilename, err)
	}
	defer f.Close()

	md := &Metadata{attrs: make(map[string]string)}

	// Go's decoder tolerates content around the document root; a second
	// top-level element or stray text is rejected here so the descriptor
	// holds exactly one root element
	var sawRoot bool
	depth := 0
	dec := xml.NewDecoder(f)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", MetadataFilename, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 && sawRoot {
				return nil, fmt.Errorf("parse %s: multiple root elements", MetadataFilename)
			}
			// the first start element is the document root; its
			// attributes carry the addon id and provider
			if !sawRoot {
				md.root = t.Name.Local
				for _, attr := range t.Attr {
					md.attrs[attr.Name.Local] = attr.Value
				}
			}
			sawRoot = true
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("parse %s: text outside the root element", MetadataFilename)
			}
		}
	}

	if !sawRoot {
		return nil, fmt.Errorf("parse %s: document has no root element", MetadataFilename)
	}

	return md, nil
}

// Attr looks up an attribute of the root element. An absent attribute is not
// an error; the second return value reports presence.
func (m *Metadata) Attr(name string) (string, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// ID returns the declared addon identifier, or "" if absent.
func (m *Metadata) ID() string {
	v, _ := m.Attr("id")
	return v
}

// ProviderName returns the declared provider, or "" if absent.
func (m *Metadata) ProviderName() string {
	v, _ := m.Attr("provider-name")
	return v
}

// FileExists reports whether a file with exactly the given name exists
// directly under dir. The comparison is case-sensitive even on filesystems
// that are not.
func FileExists(dir, name string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, e := range entries {
		if !e.IsDir() && e.Name() == name {
			return true
		}
	}
	return false
}
