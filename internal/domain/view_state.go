package domain

import "net/url"

// ViewState is the page's local state. Selection is held by key and resolved
// against the catalog at render time.
type ViewState struct {
	Filter   Filter  `json:"filter"`
	Selected *string `json:"selected,omitempty"`
}

func NewViewState() ViewState {
	return ViewState{Filter: FilterAll}
}

func (s ViewState) WithFilter(f Filter) ViewState {
	s.Filter = f
	return s
}

func (s ViewState) Select(name string) ViewState {
	s.Selected = &name
	return s
}

func (s ViewState) ClearSelection() ViewState {
	s.Selected = nil
	return s
}

func (s ViewState) SelectedName() string {
	if s.Selected == nil {
		return ""
	}
	return *s.Selected
}

// Query encodes the state for page links; defaults are left out.
func (s ViewState) Query() url.Values {
	v := url.Values{}
	if s.Filter != "" && s.Filter != FilterAll {
		v.Set("filter", string(s.Filter))
	}
	if s.Selected != nil {
		v.Set("selected", *s.Selected)
	}
	return v
}

// Href is the page URL for the state.
func (s ViewState) Href() string {
	if q := s.Query().Encode(); q != "" {
		return "/?" + q
	}
	return "/"
}
