package types

// RequestTemplate describes a future HTTP call. It is built once per item
// during a catalog load and never modified afterwards.
type RequestTemplate struct {
	APIURL string
	Method HTTPMethod
	// RawMethod keeps the method exactly as written in the document.
	RawMethod string
	Headers   Object
	Body      Object
}

// IsPost reports the boolean method encoding used by the catalog document
// consumers: true for POST, false for GET.
func (r RequestTemplate) IsPost() bool {
	return r.Method == HTTPMethodPost
}

func (r RequestTemplate) Clone() RequestTemplate {
	out := r
	out.Headers = r.Headers.Clone()
	out.Body = r.Body.Clone()
	return out
}

type Item struct {
	UniqueID  string
	Title     string
	Subtitle  string
	ImagePath string
	Request   *RequestTemplate
}

func (i Item) String() string {
	return i.Title
}

func (i Item) Clone() Item {
	out := i
	if i.Request != nil {
		request := i.Request.Clone()
		out.Request = &request
	}
	return out
}

type Group struct {
	UniqueID     string
	Title        string
	Subtitle     string
	ImagePath    string
	MoreInfoText string
	MoreInfoURI  string
	Items        []Item
}

func (g Group) String() string {
	return g.Title
}

func (g Group) Clone() Group {
	out := g
	if g.Items != nil {
		out.Items = make([]Item, len(g.Items))
		for i, item := range g.Items {
			out.Items[i] = item.Clone()
		}
	}
	return out
}

// Catalog is the full set of groups produced by one load, in document order.
type Catalog struct {
	Groups []Group
}

func (c Catalog) Len() int {
	return len(c.Groups)
}

func (c Catalog) ItemCount() int {
	count := 0
	for _, group := range c.Groups {
		count += len(group.Items)
	}
	return count
}

// FindGroup returns the group with the given id. Ids are unique within a
// loaded catalog, so the first match is the only match.
func (c Catalog) FindGroup(uniqueID string) (Group, bool) {
	for _, group := range c.Groups {
		if group.UniqueID == uniqueID {
			return group, true
		}
	}
	return Group{}, false
}

// FindItem scans the items of every group for the given id.
func (c Catalog) FindItem(uniqueID string) (Item, bool) {
	for _, group := range c.Groups {
		for _, item := range group.Items {
			if item.UniqueID == uniqueID {
				return item, true
			}
		}
	}
	return Item{}, false
}

func (c Catalog) Clone() Catalog {
	if c.Groups == nil {
		return Catalog{}
	}
	groups := make([]Group, len(c.Groups))
	for i, group := range c.Groups {
		groups[i] = group.Clone()
	}
	return Catalog{Groups: groups}
}
