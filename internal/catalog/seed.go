package catalog

import "guide_paris/internal/domain"

// Paris returns a fresh copy of the seed directory on every call.
func Paris() []domain.Restaurant {
	return []domain.Restaurant{
		{
			ID:           "1",
			Name:         "L'Arpège",
			Cuisine:      "Cuisine française contemporaine",
			Address:      "84 Rue de Varenne, 75007 Paris",
			Phone:        "01 47 05 09 06",
			PriceRange:   domain.PriceLuxury,
			Distinctions: []string{"3 étoiles Michelin", "Gault&Millau 5 toques"},
			Description:  "La cuisine végétale d'Alain Passard, servie à deux pas du musée Rodin.",
		},
		{
			ID:           "2",
			Name:         "Guy Savoy",
			Cuisine:      "Cuisine française gastronomique",
			Address:      "11 Quai de Conti, 75006 Paris",
			Phone:        "01 43 80 40 61",
			PriceRange:   domain.PriceLuxury,
			Distinctions: []string{"3 étoiles Michelin", "Gault&Millau 4 toques"},
			Description:  "Grande table installée dans les salons de la Monnaie de Paris.",
		},
		{
			ID:           "3",
			Name:         "Le Clarence",
			Cuisine:      "Cuisine française",
			Address:      "31 Avenue Franklin Delano Roosevelt, 75008 Paris",
			Phone:        "01 82 82 10 10",
			PriceRange:   domain.PriceLuxury,
			Distinctions: []string{"2 étoiles Michelin"},
		},
		{
			ID:           "4",
			Name:         "Septime",
			Cuisine:      "Cuisine créative",
			Address:      "80 Rue de Charonne, 75011 Paris",
			Phone:        "01 43 67 38 29",
			PriceRange:   domain.PriceUpscale,
			Distinctions: []string{"1 étoile Michelin", "50 Best Restaurants"},
			Description:  "Menu unique autour des producteurs, dans le 11e arrondissement.",
		},
		{
			ID:           "5",
			Name:         "Frenchie",
			Cuisine:      "Cuisine française moderne",
			Address:      "5 Rue du Nil, 75002 Paris",
			PriceRange:   domain.PriceUpscale,
			Distinctions: []string{"1 étoile Michelin", "Gault&Millau 3 toques"},
		},
		{
			ID:           "6",
			Name:         "Allard",
			Cuisine:      "Cuisine traditionnelle",
			Address:      "41 Rue Saint-André des Arts, 75006 Paris",
			Phone:        "01 43 26 48 23",
			PriceRange:   domain.PriceUpscale,
			Distinctions: []string{"Bib Gourmand"},
			Description:  "Canard aux olives et décor 1930 en plein Saint-Germain.",
		},
		{
			ID:           "7",
			Name:         "L'Ami Jean",
			Cuisine:      "Bistrot basque",
			Address:      "27 Rue Malar, 75007 Paris",
			Phone:        "01 47 05 86 89",
			PriceRange:   domain.PriceModerate,
			Distinctions: []string{"Bib Gourmand"},
		},
		{
			ID:           "8",
			Name:         "Le Comptoir du Relais",
			Cuisine:      "Bistrot",
			Address:      "9 Carrefour de l'Odéon, 75006 Paris",
			PriceRange:   domain.PriceModerate,
			Distinctions: []string{"Assiette Michelin"},
		},
		{
			ID:           "9",
			Name:         "Brasserie Vendémiaire",
			Cuisine:      "Brasserie",
			Address:      "12 Rue Vauvenargues, 75018 Paris",
			PriceRange:   domain.PriceModerate,
			Distinctions: []string{},
		},
		{
			ID:           "10",
			Name:         "Double",
			Cuisine:      "Cuisine de saison",
			Address:      "3 Rue Saint-Nicolas, 75012 Paris",
			PriceRange:   domain.PriceBudget,
			Distinctions: []string{},
		},
	}
}
