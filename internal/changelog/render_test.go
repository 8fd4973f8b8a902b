package changelog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var may1 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestFormatSection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		commits []Commit
		date    time.Time
		want    string
	}{
		"three commits": {
			commits: []Commit{
				{ShortHash: "a1b2c3d", Summary: "Fix X"},
				{ShortHash: "e4f5g6h", Summary: "Add Y"},
				{ShortHash: "112233a", Summary: "Refactor Z"},
			},
			date: may1,
			want: "## 2024-05-01\n- a1b2c3d Fix X\n- e4f5g6h Add Y\n- 112233a Refactor Z\n\n",
		},
		"single commit": {
			commits: []Commit{{ShortHash: "abc1234", Summary: "Initial commit"}},
			date:    may1,
			want:    "## 2024-05-01\n- abc1234 Initial commit\n\n",
		},
		"no commits renders heading only": {
			commits: nil,
			date:    may1,
			want:    "## 2024-05-01\n\n",
		},
		"date converted to UTC": {
			commits: []Commit{{ShortHash: "abc1234", Summary: "Late fix"}},
			// 01:30 on May 2nd at UTC+2 is still May 1st in UTC
			date: time.Date(2024, 5, 2, 1, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60)),
			want: "## 2024-05-01\n- abc1234 Late fix\n\n",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatSection(tt.commits, tt.date))
		})
	}
}

func TestFormatSection_Deterministic(t *testing.T) {
	t.Parallel()

	commits := []Commit{{ShortHash: "a1b2c3d", Summary: "Fix X"}}
	assert.Equal(t, FormatSection(commits, may1), FormatSection(commits, may1))
}

func TestSection_BulletPerCommitInOrder(t *testing.T) {
	t.Parallel()

	var commits []Commit
	for i := 0; i < 20; i++ {
		commits = append(commits, Commit{ShortHash: strings.Repeat(string(rune('a'+i)), 7), Summary: "change"})
	}

	out := NewSection(commits, may1).String()
	lines := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "## 2024-05-01", lines[0])
	for i, c := range commits {
		assert.Equal(t, "- "+c.String(), lines[i+1])
	}
}

func TestSection_Heading(t *testing.T) {
	t.Parallel()

	s := NewSection(nil, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "## 2026-01-15", s.Heading())
	assert.True(t, s.IsEmpty())
}

func TestCommit_String(t *testing.T) {
	t.Parallel()

	c := Commit{ShortHash: "a1b2c3d", Summary: "Fix bug in parser"}
	assert.Equal(t, "a1b2c3d Fix bug in parser", c.String())
}

type failingWriter struct {
	failAfter int
	writes    int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.failAfter {
		return 0, errors.New("disk full")
	}
	w.writes++
	return len(p), nil
}

func TestSection_RenderWriteError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		failAfter int
		wantMsg   string
	}{
		"heading fails": {failAfter: 0, wantMsg: "rendering heading"},
		"bullet fails":  {failAfter: 1, wantMsg: "rendering commit a1b2c3d"},
		"trailer fails": {failAfter: 2, wantMsg: "disk full"},
	}

	s := NewSection([]Commit{{ShortHash: "a1b2c3d", Summary: "Fix X"}}, may1)

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := s.Render(&failingWriter{failAfter: tt.failAfter})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
