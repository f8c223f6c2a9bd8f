package types

// SavedRequest is the YAML layout of an exported request template. It
// matches the saved-request files of terminal API clients, so an exported
// catalog can be replayed by them.
type SavedRequest struct {
	Name    string `yaml:"name"`
	Method  string `yaml:"method"`
	URL     string `yaml:"url"`
	Headers Object `yaml:"headers,omitempty"`
	Body    Object `yaml:"body,omitempty"`
}
