package sidebar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want Sidebars
	}{
		{
			desc: "empty",
			give: "",
			want: Sidebars{},
		},
		{
			desc: "doc shorthand",
			give: "book:\n  - intro\n  - install\n",
			want: Sidebars{
				"book": {
					{Type: DocItem, ID: "intro"},
					{Type: DocItem, ID: "install"},
				},
			},
		},
		{
			desc: "explicit doc",
			give: "book:\n  - type: doc\n    id: intro\n    label: Start here\n",
			want: Sidebars{
				"book": {
					{Type: DocItem, ID: "intro", Label: "Start here"},
				},
			},
		},
		{
			desc: "category with link",
			give: `
book:
  - type: category
    label: Concepts
    link:
      type: doc
      id: concepts/index
    items:
      - concepts/objects
      - type: link
        label: Website
        href: https://example.com
`,
			want: Sidebars{
				"book": {
					{
						Type:  CategoryItem,
						ID:    "concepts/index",
						Label: "Concepts",
						Items: Items{
							{Type: DocItem, ID: "concepts/objects"},
							{Type: OtherItem, Label: "Website"},
						},
					},
				},
			},
		},
		{
			desc: "category generated index",
			give: `
book:
  - type: category
    label: Guides
    link: {type: generated-index}
    items: [guides/first]
`,
			want: Sidebars{
				"book": {
					{
						Type:  CategoryItem,
						Label: "Guides",
						Items: Items{{Type: DocItem, ID: "guides/first"}},
					},
				},
			},
		},
		{
			desc: "category shorthand in list",
			give: "book:\n  - intro\n  - Guides: [guides/first, guides/second]\n",
			want: Sidebars{
				"book": {
					{Type: DocItem, ID: "intro"},
					{
						Type:  CategoryItem,
						Label: "Guides",
						Items: Items{
							{Type: DocItem, ID: "guides/first"},
							{Type: DocItem, ID: "guides/second"},
						},
					},
				},
			},
		},
		{
			desc: "category shorthand at top level",
			give: "book:\n  Basics: [a]\n  Advanced: [b]\n",
			want: Sidebars{
				"book": {
					{Type: CategoryItem, Label: "Basics", Items: Items{{Type: DocItem, ID: "a"}}},
					{Type: CategoryItem, Label: "Advanced", Items: Items{{Type: DocItem, ID: "b"}}},
				},
			},
		},
		{
			desc: "autogenerated",
			give: "book:\n  - type: autogenerated\n    dirName: reference\n",
			want: Sidebars{
				"book": {{Type: OtherItem}},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.give))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string
		want string
	}{
		{
			desc: "unknown type",
			give: "book:\n  - type: widget\n",
			want: `unknown sidebar item type "widget"`,
		},
		{
			desc: "doc without id",
			give: "book:\n  - type: doc\n    label: Oops\n",
			want: "doc item has no id",
		},
		{
			desc: "scalar sidebar",
			give: "book: intro\n",
			want: "expected a list of sidebar items",
		},
		{
			desc: "empty item",
			give: "book:\n  -\n",
			want: "empty sidebar item",
		},
		{
			desc: "nested list",
			give: "book:\n  - [a, b]\n",
			want: "unexpected sidebar item",
		},
		{
			desc: "malformed",
			give: "book: [",
			want: "yaml",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.give))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestSidebars_DocIDs(t *testing.T) {
	t.Parallel()

	sidebars, err := Parse([]byte(`
reference:
  - intro
  - reference/abilities
book:
  - intro
  - type: category
    label: Concepts
    link: {type: doc, id: concepts/index}
    items:
      - concepts/objects
      - Deep dive: [concepts/storage]
  - type: link
    href: https://example.com
`))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"intro",
		"concepts/index",
		"concepts/objects",
		"concepts/storage",
		"reference/abilities",
	}, sidebars.DocIDs())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sidebars.yaml")
		require.NoError(t, os.WriteFile(path, []byte("book: [intro]\n"), 0o644))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"intro"}, got.DocIDs())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad contents", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "sidebars.yaml")
		require.NoError(t, os.WriteFile(path, []byte("book:\n  - type: widget\n"), 0o644))

		_, err := Load(path)
		assert.ErrorContains(t, err, path)
	})
}

func TestItemType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "doc", DocItem.String())
	assert.Equal(t, "category", CategoryItem.String())
	assert.Equal(t, "other", OtherItem.String())
	assert.Equal(t, "ItemType(42)", ItemType(42).String())
}
