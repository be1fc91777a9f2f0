package rewrite

import (
	"fmt"
	"hash/fnv"
	"io"
)

// nameSeparator joins the hashed parts. Any change invalidates every
// previously generated implementation module, so treat it as frozen.
const nameSeparator = "|"

// SynthesizeName derives a stable, collision-resistant exported identifier
// from the ordered parts (template text, parameter type strings, return type
// string). Identical parts always yield the identical name across process
// runs and machines; the name is the join key between a call site and any
// previously generated implementation module.
func SynthesizeName(parts ...string) string {
	h := fnv.New64a()
	for i, p := range parts {
		if i > 0 {
			io.WriteString(h, nameSeparator)
		}
		io.WriteString(h, p)
	}
	return fmt.Sprintf("Ask_%016x", h.Sum64())
}
