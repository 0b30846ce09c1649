package models

import "github.com/shopspring/decimal"

// DefaultSiteSettings returns the branding the storefront starts with
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		SiteName:       "Ge Bolos Gourmet",
		LogoURL:        "/849297ce-29f4-4481-adcb-9154ffa3b5f3.webp",
		PrimaryColor:   "#8B4513",
		SecondaryColor: "#D2691E",
	}
}

// SeedProducts returns the initial catalog
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Bolo Red Velvet Premium",
			Description: "Delicioso bolo red velvet com cream cheese artesanal e decoração especial com flores comestíveis",
			Price:       decimal.RequireFromString("89.90"),
			Image:       "https://images.pexels.com/photos/291528/pexels-photo-291528.jpeg",
			Category:    CategoryConfeitados,
		},
		{
			ID:          "2",
			Name:        "Bolo de Chocolate Belga",
			Description: "Bolo de chocolate premium com ganache de chocolate belga e frutas vermelhas frescas",
			Price:       decimal.RequireFromString("95.50"),
			Image:       "https://images.pexels.com/photos/1721932/pexels-photo-1721932.jpeg",
			Category:    CategoryConfeitados,
		},
		{
			ID:          "3",
			Name:        "Bolo Naked Cake Morango",
			Description: "Bolo estilo naked cake com morangos frescos, chantilly e biscoitos artesanais",
			Price:       decimal.RequireFromString("78.90"),
			Image:       "https://images.pexels.com/photos/1126359/pexels-photo-1126359.jpeg",
			Category:    CategoryConfeitados,
		},
		{
			ID:          "4",
			Name:        "Bolo de Casamento 3 Andares",
			Description: "Elegante bolo de casamento com decoração em fondant, flores de açúcar e detalhes dourados",
			Price:       decimal.RequireFromString("450.00"),
			Image:       "https://images.pexels.com/photos/1702373/pexels-photo-1702373.jpeg",
			Category:    CategoryCasamento,
		},
		{
			ID:          "5",
			Name:        "Bolo de Casamento Rústico",
			Description: "Bolo de casamento estilo rústico com flores naturais e decoração minimalista",
			Price:       decimal.RequireFromString("380.00"),
			Image:       "https://images.pexels.com/photos/1702373/pexels-photo-1702373.jpeg",
			Category:    CategoryCasamento,
		},
		{
			ID:          "6",
			Name:        "Bolo de Casamento Vintage",
			Description: "Bolo romântico com decoração vintage, rendas comestíveis e pérolas de açúcar",
			Price:       decimal.RequireFromString("520.00"),
			Image:       "https://images.pexels.com/photos/1702373/pexels-photo-1702373.jpeg",
			Category:    CategoryCasamento,
		},
		{
			ID:          "7",
			Name:        "Kit Cupcakes Personalizados",
			Description: "Kit com 12 cupcakes decorados com tema personalizado para festas infantis",
			Price:       decimal.RequireFromString("48.90"),
			Image:       "https://images.pexels.com/photos/1055272/pexels-photo-1055272.jpeg",
			Category:    CategoryFesta,
		},
		{
			ID:          "8",
			Name:        "Bolo de Aniversário Temático",
			Description: "Bolo personalizado com tema de sua escolha, ideal para aniversários especiais",
			Price:       decimal.RequireFromString("120.00"),
			Image:       "https://images.pexels.com/photos/1721932/pexels-photo-1721932.jpeg",
			Category:    CategoryFesta,
		},
		{
			ID:          "9",
			Name:        "Torre de Docinhos",
			Description: "Torre com 50 docinhos variados: brigadeiros, beijinhos, cajuzinhos e bicho de pé",
			Price:       decimal.RequireFromString("85.00"),
			Image:       "https://images.pexels.com/photos/1055272/pexels-photo-1055272.jpeg",
			Category:    CategoryFesta,
		},
	}
}
