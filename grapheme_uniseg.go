package inline

import (
	"github.com/rivo/uniseg"
	"github.com/unilibs/uniwidth"
)

// UnisegGraphemeSplitter is a GraphemeSplitFunc backed by the rivo/uniseg
// implementation of Unicode grapheme cluster segmentation. Install it with
// SetGraphemeSplitter when conformant segmentation matters more than the
// default heuristic's speed and footprint.
func UnisegGraphemeSplitter(s []byte) int {
	if len(s) == 0 {
		return 0
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(s, -1)
	return len(cluster)
}

// UniwidthGraphemeWidth is a GraphemeWidthFunc backed by unilibs/uniwidth,
// the natural companion of UnisegGraphemeSplitter. Tabs keep the editor's
// fixed tab width.
func UniwidthGraphemeWidth(g []byte) int {
	if len(g) == 0 {
		return 0
	}
	if g[0] == '\t' {
		return inlineTabWidth
	}
	return uniwidth.StringWidth(string(g))
}
