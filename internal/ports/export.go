package ports

import "rest-explorer/internal/types"

type RequestExportPort interface {
	WriteRequest(path string, req types.SavedRequest) error
}
