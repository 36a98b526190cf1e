package metadata

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/illikainen/go-utils/src/fn"
)

// Metadata describes the build.  It is written to metadata.json by
// `go generate` and embedded at compile time.
type Metadata struct {
	Name    string
	Version string
	Commit  string
	Branch  string
}

func (m Metadata) String() string {
	return fmt.Sprintf("%s (%s@%s)", m.Version, m.Branch, m.Commit)
}

//go:embed metadata.json
var data []byte

var build Metadata

func init() {
	fn.Must(json.Unmarshal(data, &build))
}

func Get() Metadata {
	return build
}
