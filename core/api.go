package core

import "context"

// APIClient is any client able to fetch JSON documents from the backend API.
type APIClient interface {
	// GetJSON issues a GET request for path (relative to the API base URL)
	// and decodes the JSON response body into out.
	GetJSON(ctx context.Context, path string, query map[string]string, out interface{}) error
}
