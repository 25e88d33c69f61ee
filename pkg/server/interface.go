/*
Package server implements msgpack IPC for anagram searches.

The server provides a minimal interface for phrase-anagram requests
using msgpack serialization over stdin/stdout, so editors and other
tools can keep one process (and one loaded dictionary) around instead
of paying the word-list load on every query.

# IPC

The server operates on a request response model: clients send
structured messages via stdin and receive responses through stdout.
Each message carries an ID that is echoed back, so clients can
pipeline requests.

A search request looks like:

	{"id": "req_001", "text": "bazzecole andanti", "mincard": 1, "maxcard": 3}

The server responds with the solutions found and timing info:

	{"id": "req_001", "s": ["andante bozzacile", ...], "c": 42, "t": 10531}

Optional fields select an included text ("incl") and a per-request
solution cap ("limit"); both default from the TOML config. Invalid
requests get an error response and the server keeps running. EOF on
stdin is a clean shutdown.

Messages are self-delimiting msgpack values, decoded and encoded with
streaming codecs, so no extra framing is needed.
*/
package server

// AnagramRequest - one phrase-anagram search
type AnagramRequest struct {
	ID       string `msgpack:"id"`
	Text     string `msgpack:"text"`
	Included string `msgpack:"incl,omitempty"`
	MinCard  int    `msgpack:"mincard,omitempty"`
	MaxCard  int    `msgpack:"maxcard,omitempty"`
	Limit    int    `msgpack:"limit,omitempty"`
}

// AnagramResponse - solutions for one request
type AnagramResponse struct {
	ID        string   `msgpack:"id"`
	Solutions []string `msgpack:"s"`
	Count     int      `msgpack:"c"`
	TimeTaken int64    `msgpack:"t"` // microseconds
}

// ErrorResponse - request failure
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"error"`
	Code  int    `msgpack:"code"`
}
