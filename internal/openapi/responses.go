package openapi

import (
	"encoding/json"
	"sort"
)

const defaultResponseKey = "default"

// Responses maps HTTP status codes to responses. In JSON the optional default
// response shares the object with the status code keys.
type Responses struct {
	Default *OrRef[Response]
	Codes   map[string]*OrRef[Response]
}

// Set stores resp under a status code such as "200".
func (r *Responses) Set(code string, resp *OrRef[Response]) {
	if r.Codes == nil {
		r.Codes = make(map[string]*OrRef[Response])
	}
	r.Codes[code] = resp
}

// Get returns the response stored under a status code.
func (r *Responses) Get(code string) *OrRef[Response] {
	if r == nil {
		return nil
	}
	return r.Codes[code]
}

// StatusCodes returns the status codes in order.
func (r *Responses) StatusCodes() []string {
	codes := make([]string, 0, len(r.Codes))
	for code := range r.Codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// MarshalJSON flattens the default response and the status codes into one object.
func (r Responses) MarshalJSON() ([]byte, error) {
	out := make(map[string]*OrRef[Response], len(r.Codes)+1)
	for code, resp := range r.Codes {
		out[code] = resp
	}
	if r.Default != nil {
		out[defaultResponseKey] = r.Default
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits the "default" key from the status codes.
func (r *Responses) UnmarshalJSON(data []byte) error {
	var raw map[string]*OrRef[Response]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Default = nil
	r.Codes = nil
	for key, resp := range raw {
		if key == defaultResponseKey {
			r.Default = resp
			continue
		}
		r.Set(key, resp)
	}
	return nil
}
