// Package json routes the module's JSON encoding through jsoniter while
// keeping standard-library-compatible semantics.
package json

import (
	jsoniter "github.com/json-iterator/go"
)

var Marshal = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal
var Unmarshal = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal
