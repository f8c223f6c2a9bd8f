package app

import (
	"context"
	"sync"

	"rest-explorer/internal/adapters"
	"rest-explorer/internal/core"
	"rest-explorer/internal/types"
)

const sampleDocument = `{
  "Groups": [
    {
      "UniqueId": "G1",
      "Title": "Lists",
      "Subtitle": "",
      "ImagePath": "",
      "MoreInfoText": "",
      "MoreInfoUri": "",
      "Items": [
        {
          "UniqueId": "I1",
          "Title": "Get lists",
          "Subtitle": "",
          "ImagePath": "",
          "Request": {
            "ApiUrl": "/me/lists",
            "Method": "get",
            "Headers": {"Authorization": "Bearer ", "Accept": "application/json"},
            "Body": {}
          }
        },
        {
          "UniqueId": "I2",
          "Title": "",
          "Subtitle": "",
          "ImagePath": "",
          "Request": {
            "ApiUrl": "/me/lists",
            "Method": "POST",
            "Headers": {"Authorization": "Bearer "},
            "Body": {"name": "groceries", "shared": false}
          }
        }
      ]
    }
  ]
}`

type stubSource struct {
	data []byte
	err  error
}

func (s stubSource) ReadDocument(_ context.Context) ([]byte, error) {
	return s.data, s.err
}

func (s stubSource) Describe() string { return "stub" }

type stubTokens struct {
	token string
	ok    bool
}

func (s stubTokens) AccessToken(_ context.Context) (string, bool, error) {
	return s.token, s.ok, nil
}

type recordedRequest struct {
	path    string
	request types.SavedRequest
}

// stubExporter satisfies ports.RequestExportPort and keeps every write.
type stubExporter struct {
	mu      sync.Mutex
	written []recordedRequest
	err     error
}

func (s *stubExporter) WriteRequest(path string, req types.SavedRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.written = append(s.written, recordedRequest{path: path, request: req})
	return nil
}

func newStubService(document string, token string) Service {
	loader := core.NewCatalogLoader(
		stubSource{data: []byte(document)},
		nil,
		stubTokens{token: token, ok: token != ""},
		false,
	)
	return Service{
		Catalog:  core.NewCatalogStore(loader.Load),
		JSONText: adapters.NewJSONTextAdapter(),
		Source:   "stub",
	}
}
