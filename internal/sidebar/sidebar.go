// Package sidebar loads Docusaurus-style sidebar definitions from YAML.
//
// The top level of a sidebar file maps sidebar names to lists of items.
// Items take one of the following forms:
//
//	book:
//	  - intro                      # doc ID shorthand
//	  - type: doc                  # explicit doc
//	    id: getting-started/install
//	  - type: category
//	    label: Concepts
//	    link: {type: doc, id: concepts/index}
//	    items: [concepts/objects, concepts/abilities]
//	  - Guides: [guides/first]     # category shorthand
//	  - type: link                 # no doc
//	    href: https://example.com
package sidebar

import (
	"fmt"
	"os"
	"sort"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// ItemType identifies the kind of a sidebar [Item].
type ItemType int

// Supported item types.
const (
	// DocItem refers to a single document by ID.
	DocItem ItemType = iota + 1

	// CategoryItem groups other items under a label.
	// It may link to a document of its own.
	CategoryItem

	// OtherItem is an item that doesn't refer to a document:
	// an external link, raw HTML, or an autogenerated section.
	OtherItem
)

func (t ItemType) String() string {
	switch t {
	case DocItem:
		return "doc"
	case CategoryItem:
		return "category"
	case OtherItem:
		return "other"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// Item is a single entry in a sidebar.
type Item struct {
	Type ItemType

	// ID of the document for DocItem,
	// or of the linked document for a CategoryItem.
	// Empty if the category has no document.
	ID string

	Label string
	Items Items // only for CategoryItem
}

// Items is an ordered list of sidebar items.
type Items []Item

// Sidebars maps sidebar names to their contents.
type Sidebars map[string]Items

// Load reads and parses the sidebar file at the given path.
func Load(path string) (Sidebars, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	sidebars, err := Parse(src)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("%v: %w", path, err))
	}
	return sidebars, nil
}

// Parse parses the YAML contents of a sidebar file.
func Parse(src []byte) (Sidebars, error) {
	var sidebars Sidebars
	if err := yaml.Unmarshal(src, &sidebars); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if sidebars == nil {
		sidebars = make(Sidebars)
	}
	return sidebars, nil
}

// DocIDs returns the IDs of all documents referenced by these sidebars.
// Sidebars are visited in name order and items in file order.
// Each ID is reported once.
func (s Sidebars) DocIDs() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	var (
		ids  []string
		seen = make(map[string]struct{})
	)
	for _, name := range names {
		s[name].visitDocs(func(id string) {
			if _, ok := seen[id]; ok {
				return
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		})
	}
	return ids
}

func (is Items) visitDocs(fn func(string)) {
	for _, it := range is {
		switch it.Type {
		case DocItem:
			fn(it.ID)
		case CategoryItem:
			if len(it.ID) > 0 {
				fn(it.ID)
			}
			it.Items.visitDocs(fn)
		}
	}
}

var _ yaml.Unmarshaler = (*Items)(nil)

// UnmarshalYAML decodes a list of items,
// or a mapping from category labels to items.
func (is *Items) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		items := make(Items, 0, len(n.Content))
		for _, child := range n.Content {
			if child.Kind == yaml.MappingNode && !hasKey(child, "type") {
				cats, err := categories(child)
				if err != nil {
					return errtrace.Wrap(err)
				}
				items = append(items, cats...)
				continue
			}

			// Called directly so that null items are reported
			// rather than decoded as zero values.
			var it Item
			if err := it.UnmarshalYAML(child); err != nil {
				return errtrace.Wrap(err)
			}
			items = append(items, it)
		}
		*is = items
		return nil

	case yaml.MappingNode:
		cats, err := categories(n)
		if err != nil {
			return errtrace.Wrap(err)
		}
		*is = cats
		return nil

	default:
		return errtrace.Wrap(fmt.Errorf("line %d: expected a list of sidebar items", n.Line))
	}
}

// categories decodes the shorthand form
//
//	Label: [item, ...]
//
// Keys are kept in file order.
func categories(n *yaml.Node) (Items, error) {
	items := make(Items, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]

		var children Items
		if err := value.Decode(&children); err != nil {
			return nil, errtrace.Wrap(err)
		}
		items = append(items, Item{
			Type:  CategoryItem,
			Label: key.Value,
			Items: children,
		})
	}
	return items, nil
}

var _ yaml.Unmarshaler = (*Item)(nil)

// UnmarshalYAML decodes a single sidebar item.
func (it *Item) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		if len(n.Value) == 0 {
			return errtrace.Wrap(fmt.Errorf("line %d: empty sidebar item", n.Line))
		}
		*it = Item{Type: DocItem, ID: n.Value}
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return errtrace.Wrap(fmt.Errorf("line %d: unexpected sidebar item", n.Line))
	}

	var raw struct {
		Type  string `yaml:"type"`
		ID    string `yaml:"id"`
		Label string `yaml:"label"`
		Items Items  `yaml:"items"`
		Link  *struct {
			Type string `yaml:"type"`
			ID   string `yaml:"id"`
		} `yaml:"link"`
	}
	if err := n.Decode(&raw); err != nil {
		return errtrace.Wrap(err)
	}

	switch raw.Type {
	case "doc", "ref":
		if len(raw.ID) == 0 {
			return errtrace.Wrap(fmt.Errorf("line %d: %v item has no id", n.Line, raw.Type))
		}
		*it = Item{Type: DocItem, ID: raw.ID, Label: raw.Label}

	case "category":
		*it = Item{Type: CategoryItem, Label: raw.Label, Items: raw.Items}
		if raw.Link != nil && raw.Link.Type == "doc" {
			it.ID = raw.Link.ID
		}

	case "link", "html", "autogenerated":
		*it = Item{Type: OtherItem, Label: raw.Label}

	default:
		return errtrace.Wrap(fmt.Errorf("line %d: unknown sidebar item type %q", n.Line, raw.Type))
	}
	return nil
}

func hasKey(n *yaml.Node, key string) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return true
		}
	}
	return false
}
