package store

import "github.com/celosalong/salon-booking-api/internal/models"

// SeedReviews returns the reviews imported from the salon's Google listing
// (4.6 average over 35 at import time). Visibility defaults to true; the
// admin hides individual entries from the dashboard.
func SeedReviews() []models.Review {
	return []models.Review{
		{ID: "1", Name: "Marcus Olofsson", Rating: 5, Text: "Zidane tar alltid hand om mig på bästa sätt 😊👌", Date: "6 månader sedan", IsVisible: true},
		{ID: "2", Name: "I R", Rating: 5, Text: "Både jag och sonen klipper oss här. Snabb, noggrann bra pris samt riktigt duktiga frisörer! Rekommenderas varmt!", Date: "1 år sedan", IsVisible: true},
		{ID: "3", Name: "Maria Isaksson", Rating: 5, Text: "Fint bemött och väldigt nöjd med min första klippning av Mohamed.", Date: "4 år sedan", IsVisible: true},
		{ID: "4", Name: "Annika Wendt", Rating: 5, Text: "Alltid bra service kanon frisörer", Date: "4 år sedan", IsVisible: true},
		{ID: "5", Name: "Tomasz Rozum", Rating: 4, Text: "Vänlig bemött.", Date: "4 år sedan", IsVisible: true},
		{ID: "6", Name: "Jens Sjögren", Rating: 5, Text: "Grymma barber's", Date: "3 år sedan", IsVisible: true},
		{ID: "7", Name: "Fabio Alves", Rating: 5, Text: "Bra service. Swish accepteras.", Date: "5 år sedan", IsVisible: true},
		{ID: "8", Name: "Hassan Amiri", Rating: 5, Text: "", Date: "2 månader sedan", IsVisible: true},
		{ID: "9", Name: "Eric Wennerlund", Rating: 5, Text: "", Date: "5 månader sedan", IsVisible: true},
		{ID: "10", Name: "Josef Sandkvist", Rating: 5, Text: "", Date: "11 månader sedan", IsVisible: true},
		{ID: "11", Name: "Ojösso", Rating: 4, Text: "", Date: "1 år sedan", IsVisible: true},
		{ID: "12", Name: "Ali Alansari", Rating: 5, Text: "", Date: "1 år sedan", IsVisible: true},
		{ID: "13", Name: "Rawan Nayef", Rating: 5, Text: "", Date: "1 år sedan", IsVisible: true},
		{ID: "14", Name: "Ahmad Asaad", Rating: 5, Text: "", Date: "1 år sedan", IsVisible: true},
		{ID: "15", Name: "Husseinv3", Rating: 5, Text: "", Date: "1 år sedan", IsVisible: true},
		{ID: "16", Name: "Paulius Janušonis", Rating: 5, Text: "", Date: "2 år sedan", IsVisible: true},
		{ID: "17", Name: "Thimpan _", Rating: 4, Text: "", Date: "2 år sedan", IsVisible: true},
		{ID: "18", Name: "Mohammed Jabar", Rating: 5, Text: "", Date: "2 år sedan", IsVisible: true},
		{ID: "19", Name: "fuat farizi", Rating: 5, Text: "", Date: "3 år sedan", IsVisible: true},
		{ID: "20", Name: "obadah alnahhas", Rating: 4, Text: "", Date: "3 år sedan", IsVisible: true},
		{ID: "21", Name: "Jörgen Johansson", Rating: 5, Text: "", Date: "4 år sedan", IsVisible: true},
		{ID: "22", Name: "Ahmad Rahal", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "23", Name: "Angelo Vajda", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "24", Name: "Sebastian Aggebrandt Söderberg", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "25", Name: "MUSTAFA MAHMOUD", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "26", Name: "casper christensen", Rating: 4, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "27", Name: "Mohammed Ali", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "28", Name: "Rahmatullah Ahmadi", Rating: 5, Text: "", Date: "5 år sedan", IsVisible: true},
		{ID: "29", Name: "Henrietta Dömötör (Pili)", Rating: 5, Text: "", Date: "6 år sedan", IsVisible: true},
		{ID: "30", Name: "Hast Fatah", Rating: 5, Text: "", Date: "6 år sedan", IsVisible: true},
		{ID: "31", Name: "Hasan Shkeer", Rating: 5, Text: "", Date: "7 år sedan", IsVisible: true},
	}
}
