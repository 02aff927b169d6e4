package entity

// Property is the read-only projection the public pages render. It is derived
// from Listings and approved Submissions and never persisted.
type Property struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Price        string   `json:"price"`
	Type         string   `json:"type"`
	Location     string   `json:"location"`
	Beds         int      `json:"beds"`
	Baths        int      `json:"baths"`
	Area         string   `json:"area"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
	Certified    bool     `json:"certified"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
	YearBuilt    int      `json:"yearBuilt"`
	PropertyType string   `json:"propertyType"`
	City         string   `json:"city"`
	Images       []string `json:"images"`
	Address      string   `json:"address"`
	Floor        string   `json:"floor"`
	TotalFloors  string   `json:"totalFloors"`
	OwnerName    string   `json:"ownerName"`
	OwnerEmail   string   `json:"ownerEmail"`
	OwnerPhone   string   `json:"ownerPhone"`
}
