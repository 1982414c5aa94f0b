package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSONDocument(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"bare object",
			`{"a":1}`,
			`{"a":1}`,
		},
		{
			"fenced object",
			"```json\n{\"a\":1}\n```",
			`{"a":1}`,
		},
		{
			"object with surrounding prose",
			"Here is the itinerary you asked for:\n{\"a\":1}\nHope it helps!",
			`{"a":1}`,
		},
		{
			"nested braces inside strings",
			`Sure. {"note":"use {curly} braces","n":{"x":1}} done`,
			`{"note":"use {curly} braces","n":{"x":1}}`,
		},
		{
			"escaped quotes inside strings",
			`{"quote":"she said \"hi\" {","n":1}`,
			`{"quote":"she said \"hi\" {","n":1}`,
		},
		{
			"array document",
			"text [1,2,{\"a\":[3]}] trailing",
			`[1,2,{"a":[3]}]`,
		},
		{
			"unbalanced braces",
			`{"a": {"b": 1}`,
			"",
		},
		{
			"no document at all",
			"sorry, I cannot help with that",
			"",
		},
		{
			"object wins when it precedes an array",
			`{"a":[1,2]} [3,4]`,
			`{"a":[1,2]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractJSONDocument(tc.in))
		})
	}
}
