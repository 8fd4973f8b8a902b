package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleSection = "## 2024-05-01\n- a1b2c3d Fix X\n\n"

func TestEnsureHeader(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		want    string
	}{
		"empty content": {
			content: "",
			want:    "# Changelog\n\n",
		},
		"header present": {
			content: "# Changelog\n\n## 2024-04-20\n- old\n\n",
			want:    "# Changelog\n\n## 2024-04-20\n- old\n\n",
		},
		"notes without header": {
			content: "old notes\n",
			want:    "# Changelog\n\nold notes\n",
		},
		"header not on first line": {
			content: "intro\n# Changelog\n",
			want:    "# Changelog\n\nintro\n# Changelog\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, EnsureHeader(tt.content))
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		existing string
		want     string
	}{
		"absent file": {
			existing: "",
			want:     "# Changelog\n\n" + sampleSection,
		},
		"header only": {
			existing: "# Changelog\n\n",
			want:     "# Changelog\n\n" + sampleSection,
		},
		"header without trailing newline": {
			existing: "# Changelog",
			want:     "# Changelog\n\n" + sampleSection,
		},
		"previous section": {
			existing: "# Changelog\n\n## 2024-04-20\n- e4f5g6h Add Y\n\n",
			want:     "# Changelog\n\n## 2024-04-20\n- e4f5g6h Add Y\n\n" + sampleSection,
		},
		"content without trailing blank line": {
			existing: "# Changelog\n\nsome text\n",
			want:     "# Changelog\n\nsome text\n\n" + sampleSection,
		},
		"notes without header": {
			existing: "old notes\n",
			want:     "# Changelog\n\nold notes\n\n" + sampleSection,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := Merge(tt.existing, sampleSection)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(got, "# Changelog\n\n"))
			assert.Equal(t, 1, strings.Count(got, Header), "header appears exactly once")
		})
	}
}
