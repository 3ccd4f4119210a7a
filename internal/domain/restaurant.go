package domain

// PriceRange is ordered from cheapest to most expensive.
type PriceRange int

const (
	PriceBudget PriceRange = iota + 1
	PriceModerate
	PriceUpscale
	PriceLuxury
)

var priceSymbols = map[PriceRange]string{
	PriceBudget:   "€",
	PriceModerate: "€€",
	PriceUpscale:  "€€€",
	PriceLuxury:   "€€€€",
}

func (p PriceRange) String() string { return priceSymbols[p] }

func (p PriceRange) Valid() bool {
	_, ok := priceSymbols[p]
	return ok
}

// ParsePriceRange accepts the symbolic form ("€€").
func ParsePriceRange(s string) (PriceRange, bool) {
	for p, sym := range priceSymbols {
		if sym == s {
			return p, true
		}
	}
	return 0, false
}

func (p PriceRange) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *PriceRange) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*p = 0
		return nil
	}
	v, ok := ParsePriceRange(string(b))
	if !ok {
		return ErrInvalidRecord
	}
	*p = v
	return nil
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type Restaurant struct {
	ID           string       `json:"id" validate:"max=64"`
	Name         string       `json:"name" validate:"required,max=200"`
	Cuisine      string       `json:"cuisine" validate:"required,max=200"`
	Address      string       `json:"address" validate:"required,max=300"`
	Phone        string       `json:"phone,omitempty" validate:"max=40"`
	PriceRange   PriceRange   `json:"priceRange" validate:"min=1,max=4"`
	Distinctions []string     `json:"distinctions" validate:"dive,required"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" validate:"omitempty"`
	Photos       []string     `json:"photos,omitempty" validate:"dive,required"`
	Description  string       `json:"description,omitempty" validate:"max=2000"`

	// Tags is decoded from Distinctions when the catalog is built.
	Tags []Distinction `json:"tags,omitempty" validate:"-"`
}

// Clone returns a copy that shares no slices or pointers with r.
func (r Restaurant) Clone() Restaurant {
	out := r
	out.Distinctions = append([]string(nil), r.Distinctions...)
	out.Photos = append([]string(nil), r.Photos...)
	out.Tags = append([]Distinction(nil), r.Tags...)
	if r.Coordinates != nil {
		c := *r.Coordinates
		out.Coordinates = &c
	}
	return out
}
