package dto

// HomepageResponse is the static landing page content
type HomepageResponse struct {
	Slogan       string   `json:"slogan" example:"Explore Your Future"`
	Services     []string `json:"services"`
	Reviews      []string `json:"reviews"`
	ContactEmail string   `json:"contact_email" example:"support@careerguidance.com"`
}
