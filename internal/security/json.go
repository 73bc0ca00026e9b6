package security

import (
	"encoding/json"
	"net/http"
)

func decodeJSONBody(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
