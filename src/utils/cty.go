package utils

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// gocty.FromCtyValue() can't decode null attributes into zero values, so
// the value takes a detour through JSON.
func FromCtyValue(value cty.Value, out any) error {
	data, err := ctyjson.Marshal(value, value.Type())
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(json.Unmarshal(data, out))
}
