package types

// Document is the raw shape of the catalog JSON file. Field names follow the
// document, not Go conventions.
type Document struct {
	Groups []GroupDocument `json:"Groups" validate:"dive"`
}

type GroupDocument struct {
	UniqueID     string         `json:"UniqueId" validate:"required"`
	Title        string         `json:"Title"`
	Subtitle     string         `json:"Subtitle"`
	ImagePath    string         `json:"ImagePath"`
	MoreInfoText string         `json:"MoreInfoText"`
	MoreInfoURI  string         `json:"MoreInfoUri"`
	Items        []ItemDocument `json:"Items" validate:"dive"`
}

type ItemDocument struct {
	UniqueID  string          `json:"UniqueId" validate:"required"`
	Title     string          `json:"Title"`
	Subtitle  string          `json:"Subtitle"`
	ImagePath string          `json:"ImagePath"`
	Request   RequestDocument `json:"Request"`
}

type RequestDocument struct {
	APIURL  string `json:"ApiUrl" validate:"required"`
	Method  string `json:"Method"`
	Headers Object `json:"Headers"`
	Body    Object `json:"Body"`
}
