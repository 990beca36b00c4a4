package httpx

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"
)

// ProblemContentType is the media type of RFC7807 bodies.
const ProblemContentType = "application/problem+json"

// maxProblemBody bounds how much of an error body is read.
const maxProblemBody = 64 << 10

// ProblemDetail represents RFC7807 problem details.
type ProblemDetail struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// Problem sends an RFC7807 problem details response.
func Problem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ProblemDetail{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

// ReadProblem extracts a problem document from an error response. Plain JSON
// bodies with a "detail", "message" or "error" field are accepted too; any
// other body is returned trimmed as Detail.
func ReadProblem(resp *http.Response) ProblemDetail {
	pd := ProblemDetail{Status: resp.StatusCode, Title: http.StatusText(resp.StatusCode)}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBody))
	if err != nil || len(raw) == 0 {
		return pd
	}
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == ProblemContentType || mediaType == "application/json" {
		var body struct {
			ProblemDetail
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil {
			if body.Title != "" {
				pd.Title = body.Title
			}
			pd.Type = body.Type
			switch {
			case body.Detail != "":
				pd.Detail = body.Detail
			case body.Message != "":
				pd.Detail = body.Message
			default:
				pd.Detail = body.Error
			}
			return pd
		}
	}
	pd.Detail = strings.TrimSpace(string(raw))
	return pd
}
