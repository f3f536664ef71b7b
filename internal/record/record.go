// Package record decodes input lines and counts their words.
package record

import (
	"errors"

	"github.com/tidwall/gjson"

	"github.com/verte-zerg/tagstat/internal/model"
)

// ErrMalformed reports a line that is not valid JSON.
var ErrMalformed = errors.New("malformed JSON record")

// Decode parses one line into a record. Missing or non-array "texts" and
// "tags" fields decode to empty lists and non-string members are dropped.
// When a key repeats, the last occurrence wins.
func Decode(line string) (model.Record, error) {
	if !gjson.Valid(line) {
		return model.Record{}, ErrMalformed
	}
	doc := gjson.Parse(line)
	if !doc.IsObject() {
		return model.Record{}, nil
	}
	var texts, tags gjson.Result
	doc.ForEach(func(key, value gjson.Result) bool {
		switch key.String() {
		case "texts":
			texts = value
		case "tags":
			tags = value
		}
		return true
	})
	return model.Record{
		Texts: stringArray(texts),
		Tags:  stringArray(tags),
	}, nil
}

func stringArray(value gjson.Result) []string {
	if !value.IsArray() {
		return nil
	}
	var out []string
	value.ForEach(func(_, item gjson.Result) bool {
		if item.Type == gjson.String {
			out = append(out, item.Str)
		}
		return true
	})
	return out
}
