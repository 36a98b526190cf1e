package outputs

import (
	"github.com/samber/lo"
)

type Outputs []*Output

func (o Outputs) Changed() bool {
	return lo.ContainsBy(o, func(out *Output) bool {
		return out.IsChanged()
	})
}

func (o Outputs) Roots() []string {
	return lo.Map(o, func(out *Output, _ int) string {
		return out.Root
	})
}
