package response

import (
	"encoding/json"
	"net/http"

	"talenttrack/internal/common"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error maps an error's code to a status and renders {"detail": ...}.
// Opaque failures become 500 with no internals leaked.
func Error(w http.ResponseWriter, err error) {
	JSON(w, StatusFor(common.CodeOf(err)), errorBody{Detail: common.MessageOf(err)})
}

func StatusFor(code common.Code) int {
	switch code {
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeConflict:
		return http.StatusConflict
	case common.CodeValidation, common.CodeInvalidTransition:
		return http.StatusUnprocessableEntity
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
