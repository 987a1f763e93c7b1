package domain

// PricingPackage is one of the studio's fixed-price offers.
type PricingPackage struct {
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Tagline  string   `json:"tagline"`
	Features []string `json:"features"`
	Duration string   `json:"duration"`
}

// FAQItem is one question/answer pair shown on the landing page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ContentUsecase serves the static landing-page content.
type ContentUsecase interface {
	Packages() []PricingPackage
	FAQ() []FAQItem
}
