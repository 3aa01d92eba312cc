package catalog

import "wedding_site/internal/domain"

func pstr(s string) *string     { return &s }
func pfloat(f float64) *float64 { return &f }

// accommodations is the curated list around Lagoa da Conceição. Exactly
// one record carries IsVenue; its coordinate centers the map. Lat/Lng
// are static fallbacks that the resolution pipeline may overwrite.
var accommodations = []domain.Accommodation{
	{
		ID:          "haute-haus",
		Name:        "Haute Haus – Guest House",
		Description: "O local da celebração. Suítes disponíveis para os convidados mais próximos.",
		Address:     "Rua Laurindo Januário da Silveira, 505 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.5954,
		Lng:         -48.4580,
		Cluster:     domain.ClusterVenue,
		Rating:      pfloat(9.4),
		RatingLabel: pstr("Excepcional"),
		Amenities:   []string{"Piscina", "Café da manhã", "Vista para a lagoa", "Estacionamento"},
		ImageURL:    "https://images.unsplash.com/photo-1590523741831?auto=format&fit=crop&w=1200",
		IsVenue:     true,
	},
	{
		ID:          "pousada-osni",
		Name:        "Pousada dos Ventos",
		Description: "A dez minutos a pé da celebração, na rua do evento.",
		Address:     "Rua Osni Ortiga, 120 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.5990,
		Lng:         -48.4555,
		Cluster:     domain.ClusterOsniOrtiga,
		Rating:      pfloat(8.7),
		RatingLabel: pstr("Ótimo"),
		PriceRange:  pstr("R$ 350–500"),
		Amenities:   []string{"Café da manhã", "Wi-Fi", "Ar-condicionado"},
		BookingURL:  pstr("https://www.booking.com/hotel/br/pousada-dos-ventos.html"),
	},
	{
		ID:          "residencial-lagoa",
		Name:        "Residencial Lagoa Flats",
		Description: "Flats com cozinha, ideais para famílias.",
		Address:     "Rua Osni Ortiga, 680 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6012,
		Lng:         -48.4542,
		Cluster:     domain.ClusterOsniOrtiga,
		Rating:      pfloat(8.2),
		RatingLabel: pstr("Muito bom"),
		PriceRange:  pstr("R$ 280–420"),
		Amenities:   []string{"Cozinha", "Lavanderia", "Estacionamento"},
		BookingURL:  pstr("https://www.booking.com/hotel/br/residencial-lagoa-flats.html"),
	},
	{
		ID:          "hotel-centrinho",
		Name:        "Hotel do Centrinho",
		Description: "No coração do centrinho da Lagoa, perto de bares e restaurantes.",
		Address:     "Avenida Afonso Delambert Neto, 400 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6020,
		Lng:         -48.4679,
		Cluster:     domain.ClusterCentro,
		Rating:      pfloat(8.9),
		RatingLabel: pstr("Ótimo"),
		PriceRange:  pstr("R$ 400–600"),
		Amenities:   []string{"Café da manhã", "Academia", "Bar", "Wi-Fi"},
		BookingURL:  pstr("https://www.booking.com/hotel/br/do-centrinho.html"),
	},
	{
		ID:          "pousada-da-praca",
		Name:        "Pousada da Praça",
		Description: "Charmosa e econômica, de frente para a praça central.",
		Address:     "Rua Henrique Veras do Nascimento, 85 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6031,
		Lng:         -48.4694,
		Cluster:     domain.ClusterCentro,
		Rating:      pfloat(8.0),
		RatingLabel: pstr("Muito bom"),
		PriceRange:  pstr("R$ 220–340"),
		Amenities:   []string{"Café da manhã", "Wi-Fi"},
	},
	{
		ID:          "hostel-rendeiras",
		Name:        "Hostel das Rendeiras",
		Description: "Opção jovem na avenida beira-lagoa, perto dos quiosques.",
		Address:     "Avenida das Rendeiras, 1672 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6073,
		Lng:         -48.4513,
		Cluster:     domain.ClusterRendeiras,
		Rating:      pfloat(7.8),
		RatingLabel: pstr("Bom"),
		PriceRange:  pstr("R$ 90–180"),
		Amenities:   []string{"Cozinha compartilhada", "Wi-Fi", "Bicicletas"},
		BookingURL:  pstr("https://www.booking.com/hotel/br/hostel-das-rendeiras.html"),
	},
	{
		ID:          "pousada-rendeiras",
		Name:        "Pousada Beira-Lagoa",
		Description: "Quartos com varanda e pôr do sol sobre a lagoa.",
		Address:     "Avenida das Rendeiras, 2080 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6089,
		Lng:         -48.4490,
		Cluster:     domain.ClusterRendeiras,
		Rating:      pfloat(8.5),
		RatingLabel: pstr("Muito bom"),
		PriceRange:  pstr("R$ 320–480"),
		Amenities:   []string{"Varanda", "Café da manhã", "Estacionamento"},
	},
	{
		ID:          "retiro-canto-da-lagoa",
		Name:        "Retiro Canto da Lagoa",
		Description: "Silêncio e natureza, a uma curta corrida de carro do evento.",
		Address:     "Rua Canto da Lagoa, 2280 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.6141,
		Lng:         -48.4702,
		Cluster:     domain.ClusterRetiro,
		Rating:      pfloat(9.1),
		RatingLabel: pstr("Excepcional"),
		PriceRange:  pstr("R$ 500–750"),
		Amenities:   []string{"Jardim", "Trilhas", "Café da manhã", "Spa"},
		BookingURL:  pstr("https://www.booking.com/hotel/br/retiro-canto-da-lagoa.html"),
	},
	{
		ID:          "casa-do-morro",
		Name:        "Casa do Morro",
		Description: "Casa inteira no alto do morro, vista panorâmica da lagoa.",
		Address:     "Servidão Manoel Tomaz de Aquino, 310 - Lagoa da Conceição, Florianópolis - SC",
		Lat:         -27.5987,
		Lng:         -48.4731,
		Cluster:     domain.ClusterRetiro,
		Rating:      pfloat(9.6),
		RatingLabel: pstr("Excepcional"),
		PriceRange:  pstr("R$ 800–1200"),
		Amenities:   []string{"Casa inteira", "Vista panorâmica", "Churrasqueira", "Estacionamento"},
	},
}

// Accommodations returns the curated accommodation list.
func Accommodations() []domain.Accommodation {
	out := make([]domain.Accommodation, len(accommodations))
	copy(out, accommodations)
	return out
}
