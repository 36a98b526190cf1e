package outputs

import (
	"sort"

	"github.com/samber/lo"
)

type Output struct {
	Root    string              `json:"root"`
	Changed bool                `json:"changed"`
	Diff    map[string][]string `json:"diff"`
}

func (o *Output) IsChanged() bool {
	return o.Changed
}

func (o *Output) Differences() map[string][]string {
	return o.Diff
}

// Keys returns the non-empty difference types in a stable order.
func (o *Output) Keys() []string {
	keys := lo.Filter(lo.Keys(o.Diff), func(typ string, _ int) bool {
		return len(o.Diff[typ]) > 0
	})
	sort.Strings(keys)
	return keys
}
