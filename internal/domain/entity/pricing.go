package entity

// PricingSettings is the singleton record of listing plan prices, overwritten
// wholesale on update. Values are decimal strings as entered by the admin.
type PricingSettings struct {
	Basic    string `json:"basic" firestore:"basic"`
	Featured string `json:"featured" firestore:"featured"`
	Premium  string `json:"premium" firestore:"premium"`
}

// DefaultPricingSettings returns the prices shown before an admin ever saves.
func DefaultPricingSettings() *PricingSettings {
	return &PricingSettings{
		Basic:    "9.99",
		Featured: "24.99",
		Premium:  "49.99",
	}
}
