package graphql

import (
	"fmt"
	"io"
	"mime"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is a GraphQL request as sent over HTTP. Variables are decoded but not otherwise used by
// validation.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
	Extensions    map[string]interface{} `json:"extensions,omitempty"`
}

const maxRequestBodySize = 1 << 20

// NewRequestFromHTTP decodes a GET or POST request. On failure, the returned status code should be
// sent to the client.
func NewRequestFromHTTP(r *http.Request) (*Request, int, error) {
	ret := &Request{}

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		ret.Query = q.Get("query")
		ret.OperationName = q.Get("operationName")
		if variables := q.Get("variables"); variables != "" {
			if err := json.UnmarshalFromString(variables, &ret.Variables); err != nil {
				return nil, http.StatusBadRequest, errors.Wrap(err, "malformed variables")
			}
		}
		if extensions := q.Get("extensions"); extensions != "" {
			if err := json.UnmarshalFromString(extensions, &ret.Extensions); err != nil {
				return nil, http.StatusBadRequest, errors.Wrap(err, "malformed extensions")
			}
		}
	case http.MethodPost:
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		body, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxRequestBodySize))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return nil, http.StatusRequestEntityTooLarge, errors.Wrap(err, "request body too large")
			}
			return nil, http.StatusBadRequest, errors.Wrap(err, "unable to read body")
		}
		switch mediaType {
		case "application/graphql":
			ret.Query = string(body)
		case "application/json":
			if err := json.Unmarshal(body, ret); err != nil {
				return nil, http.StatusBadRequest, errors.Wrap(err, "malformed request body")
			}
		default:
			return nil, http.StatusBadRequest, fmt.Errorf("unsupported content type: %v", mediaType)
		}
		if ret.Query == "" {
			ret.Query = r.URL.Query().Get("query")
		}
	default:
		return nil, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed")
	}

	if ret.Query == "" && ret.Extensions["persistedQuery"] == nil {
		return nil, http.StatusBadRequest, fmt.Errorf("no query")
	}
	return ret, http.StatusOK, nil
}
