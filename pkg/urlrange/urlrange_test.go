package urlrange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-bulkdl/pkg/urlrange"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "no pattern",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: []string{"https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		},
		{
			name: "ascending range",
			url:  "http://x.com/[1-3]/page",
			want: []string{"http://x.com/1/page", "http://x.com/2/page", "http://x.com/3/page"},
		},
		{
			name: "single element range",
			url:  "http://x.com/[5-5]/page",
			want: []string{"http://x.com/5/page"},
		},
		{
			name: "inverted range is empty",
			url:  "http://x.com/[3-1]/page",
			want: []string{},
		},
		{
			name: "only first token sets bounds",
			url:  "a[1-2]b[9-9]c",
			want: []string{"a1b[9-9]c", "a2b[9-9]c"},
		},
		{
			name: "identical tokens are all replaced",
			url:  "s/[1-2]/e[1-2].mp4",
			want: []string{"s/1/e1.mp4", "s/2/e2.mp4"},
		},
		{
			name: "leading zeros are not kept",
			url:  "ep[08-10]",
			want: []string{"ep8", "ep9", "ep10"},
		},
		{
			name: "non numeric bracket falls through",
			url:  "http://x.com/[a-c]/page",
			want: []string{"http://x.com/[a-c]/page"},
		},
		{
			name: "negative start does not match",
			url:  "http://x.com/[-1-2]",
			want: []string{"http://x.com/[-1-2]"},
		},
		{
			name: "unclosed bracket",
			url:  "http://x.com/[1-2",
			want: []string{"http://x.com/[1-2"},
		},
		{
			name: "bounds beyond int",
			url:  "x[1-99999999999999999999999]",
			want: []string{"x[1-99999999999999999999999]"},
		},
		{
			name: "empty string",
			url:  "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := urlrange.Expand(tt.url)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_LengthMatchesRange(t *testing.T) {
	got := urlrange.Expand("https://example.com/img[100-199].jpg")
	require.Len(t, got, 100)
	assert.Equal(t, "https://example.com/img100.jpg", got[0])
	assert.Equal(t, "https://example.com/img199.jpg", got[99])
}

func TestExpand_Idempotent(t *testing.T) {
	for _, u := range urlrange.Expand("http://x.com/[1-12]/page") {
		assert.Equal(t, []string{u}, urlrange.Expand(u))
	}
}

func TestFind(t *testing.T) {
	r, ok := urlrange.Find("http://x.com/[7-9]/p[1-2]")
	require.True(t, ok)
	assert.Equal(t, urlrange.Range{Token: "[7-9]", Start: 7, End: 9}, r)
	assert.Equal(t, 3, r.Len())

	_, ok = urlrange.Find("http://x.com/page")
	assert.False(t, ok)

	assert.Equal(t, 0, urlrange.Range{Start: 3, End: 1}.Len())
}

func TestExpandAll(t *testing.T) {
	got := urlrange.ExpandAll([]string{"a[1-2]", "b", "c[2-1]", "d[0-0]"})
	assert.Equal(t, []string{"a1", "a2", "b", "d0"}, got)
	assert.Empty(t, urlrange.ExpandAll(nil))
}
