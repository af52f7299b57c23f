package providers

import jsoniter "github.com/json-iterator/go"

// JSON is the codec shared by upstream clients and the HTTP layer. Numbers decode
// as json.Number so ids and stats survive a decode/encode round trip unchanged.
var JSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()
