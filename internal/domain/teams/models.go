package teams

// Team is the summary shape produced by the provider's team listing.
type Team struct {
	Name        string   `json:"name"`
	CommonName  string   `json:"common_name"`
	Abbr        string   `json:"abbr"`
	Logo        string   `json:"logo"`
	Conference  Grouping `json:"conference"`
	Division    Grouping `json:"division"`
	FranchiseID int      `json:"franchise_id,omitempty"`
}

// Grouping is a conference or division reference.
type Grouping struct {
	Abbr string `json:"abbr"`
	Name string `json:"name"`
}

// ListResponse wraps the team listing for the HTTP surface.
type ListResponse struct {
	Teams []Team `json:"teams"`
}
