package instr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calkit/stepdoc/instr"
)

func TestExtractMedia(t *testing.T) {
	for _, tc := range []struct {
		name  string
		in    string
		clean string
		urls  []string
	}{
		{
			name:  "no media",
			in:    "nothing to see",
			clean: "nothing to see",
		},
		{
			name:  "image removed",
			in:    "before ![alt](shot.png) after",
			clean: "before  after",
			urls:  []string{"shot.png"},
		},
		{
			name:  "parens inside url",
			in:    "![x](path (copy).mp4)",
			clean: "",
			urls:  []string{"path (copy).mp4"},
		},
		{
			name:  "media link keeps text",
			in:    "watch [the demo](clip.mp4) first",
			clean: "watch the demo first",
			urls:  []string{"clip.mp4"},
		},
		{
			name:  "non-media link becomes anchor",
			in:    "see [docs](https://example.com/help)",
			clean: `see <a href="https://example.com/help" target="_blank">docs</a>`,
		},
		{
			name:  "source order preserved",
			in:    "![a](a.png) then [b](b.mp4) then ![c](c (v2).gif)",
			clean: " then b then ",
			urls:  []string{"a.png", "b.mp4", "c (v2).gif"},
		},
		{
			name:  "unclosed syntax passes through",
			in:    "broken ![alt](no-close.png",
			clean: "broken ![alt](no-close.png",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			clean, urls := instr.ExtractMedia(tc.in)
			assert.Equal(t, tc.clean, clean, "clean text")
			assert.Equal(t, tc.urls, urls, "extracted urls")
		})
	}
}

func TestIsMediaURL(t *testing.T) {
	assert.True(t, instr.IsMediaURL("a.mp4"))
	assert.True(t, instr.IsMediaURL("dir/shot.PNG"))
	assert.True(t, instr.IsMediaURL("Revision (2).mp4"))
	assert.False(t, instr.IsMediaURL("https://example.com/help"))
	assert.False(t, instr.IsMediaURL("notes.txt"))
}
