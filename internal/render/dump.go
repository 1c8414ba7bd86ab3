package render

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a labelled, deterministic deep dump of each value.
func Dump(w io.Writer, label string, v any) {
	io.WriteString(w, "# "+label+"\n")
	dumper.Fdump(w, v)
}
