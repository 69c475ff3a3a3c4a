package catalog

// Service is a static catalog entry. The catalog is process-wide read-only
// configuration; bookings reference services by id only.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
	Description string  `json:"description"`
}

var services = []Service{
	{ID: "herrklippning", Name: "Herrklippning", Price: 350, DurationMin: 30, Description: "Professionell klippning med konsultation"},
	{ID: "rakning", Name: "Rakning", Price: 400, DurationMin: 45, Description: "Traditionell rakning med varm handduk"},
	{ID: "vip-paket", Name: "VIP Paket", Price: 650, DurationMin: 75, Description: "Klippning, skäggtrimning, rakning och massage"},
	{ID: "skagg", Name: "Skäggtrimning", Price: 250, DurationMin: 20, Description: "Professionell skäggformning"},
}

func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

func ServiceByID(id string) (Service, bool) {
	for _, s := range services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// SalonInfo is the static contact block shown on the public site and used
// in confirmation emails.
type SalonInfo struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PostalCode    string `json:"postal_code"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Instagram     string `json:"instagram"`
	GoogleMapsURL string `json:"google_maps_url"`
}

var salonInfo = SalonInfo{
	Name:          "Celo Salong",
	Address:       "Amiralsgatan 50",
	PostalCode:    "214 37",
	City:          "Malmö",
	Phone:         "040-12 54 44",
	Instagram:     "mohammed_frisor",
	GoogleMapsURL: "https://maps.google.com/?q=Amiralsgatan+50,+214+37+Malmö",
}

func Salon() SalonInfo {
	return salonInfo
}
