package services

// Package describes a purchasable token bundle. The catalog is static; the
// purchase flow lives outside this service.
type Package struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	TokensAmount int    `json:"tokens_amount"`
	PriceCents   int    `json:"price_cents"`
	Description  string `json:"description"`
}

type PackageService interface {
	ListPackages() []Package
}

type packageService struct {
	packages []Package
}

func NewPackageService() PackageService {
	return &packageService{
		packages: []Package{
			{
				ID:           "basic",
				Name:         "Basic",
				TokensAmount: 100000,
				PriceCents:   9900,
				Description:  "For light use",
			},
			{
				ID:           "standard",
				Name:         "Standard",
				TokensAmount: 500000,
				PriceCents:   39900,
				Description:  "For everyday use",
			},
			{
				ID:           "premium",
				Name:         "Premium",
				TokensAmount: 2000000,
				PriceCents:   129900,
				Description:  "For heavy use",
			},
		},
	}
}

func (s *packageService) ListPackages() []Package {
	return s.packages
}
