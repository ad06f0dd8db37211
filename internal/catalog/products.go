package catalog

import "github.com/velas-starlight/storefront/internal/domain"

// products returns the storefront's product table. New products are added
// here; keep ids unique.
func products() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Flor Escondida",
			Category:    "Vela",
			Description: "Una elegante vela con un diseño de flor de loto, perfecta para ambientar tu hogar con una sensación de paz y tranquilidad. Ideal para un momento de relajación o meditación.",
			Image:       "images/vela-starlight-rosas.jpeg",
			Types:       []string{"Soya", "Parafina"},
			Sizes: []domain.ProductSize{
				{Label: "50 gr", Price: 75},
				{Label: "100 gr", Price: 120},
				{Label: "150 gr", Price: 180},
			},
			Fragrances: []string{
				"Rosas Especiales", "Lavanda", "Vainilla", "Canela",
				"Fresa", "Frutos Rojos", "Blue Berry", "Cereza",
				"Manzana-Canela", "Pitaya", "Flores Hawaianas",
				"Citricos", "Coco", "Menta", "Sandalo",
			},
			Featured:  true,
			Available: true,
		},
		{
			ID:          2,
			Title:       "Ángel de la Calma",
			Category:    "Vela",
			Description: "Una delicada vela con la figura de un angelito en su base, que brinda un aroma puro y etéreo. Perfecta para crear un ambiente celestial y sereno en cualquier espacio de tu hogar.",
			Image:       "images/vela-starlight-angeles.jpeg",
			Types:       []string{"Soya", "Parafina"},
			Sizes: []domain.ProductSize{
				{Label: "50 gr", Price: 75},
				{Label: "80 gr", Price: 95},
			},
			Fragrances: []string{
				"Lavanda", "Vainilla", "Canela", "Fresa", "Frutos Rojos",
				"Blue Berry", "Cereza", "Manzana-Canela", "Pitaya",
				"Rosas Especiales", "Flores Hawaianas", "Citricos",
				"Coco", "Menta", "Sandalo",
			},
			Available: true,
		},
		{
			ID:          3,
			Title:       "Vela Pino Navideño",
			Category:    "Vela",
			Description: "Una vela con forma de pino navideño, perfecta para crear un ambiente festivo y acogedor durante las fiestas. Su aroma a pino te transportará a un bosque nevado.",
			Image:       "images/vela-starlight-pino.jpeg",
			Types:       []string{"Soya", "Parafina"},
			Sizes: []domain.ProductSize{
				{Label: "100 gr", Price: 120},
				{Label: "150 gr", Price: 180},
				{Label: "200 gr", Price: 220},
			},
			Fragrances: []string{"Pino Fresco", "Canela", "Manzana-Canela", "Menta", "Sándalo"},
			Featured:   true,
			Available:  true,
		},
		{
			ID:          4,
			Title:       "Vela Muela",
			Category:    "Vela",
			Description: "Una vela con un diseño único en forma de muela, perfecta para celebrar a dentistas, estudiantes de odontología o a cualquier persona del sector. Ideal como regalo original para decorar un consultorio o simplemente para añadir un toque divertido a cualquier espacio.",
			Image:       "images/vela-starlight-muela.jpeg",
			Types:       []string{"Soya", "Parafina"},
			Sizes: []domain.ProductSize{
				{Label: "150 gr", Price: 150},
				{Label: "200 gr", Price: 190},
			},
			Fragrances: []string{"Menta", "Eucalipto", "Vainilla", "Lavanda", "Frutos Rojos"},
			New:        true,
			Available:  true,
		},
		{
			ID:          5,
			Title:       "Vela Flor de Cempasúchil",
			Category:    "Vela",
			Description: "Celebra el Día de Muertos con esta hermosa vela en forma de flor de Cempasúchil, símbolo de la tradición. Ideal para altares y decoración festiva.",
			Image:       "images/vela-flor-cempasuchil.jpeg",
			Types:       []string{"Soya", "Parafina"},
			Sizes: []domain.ProductSize{
				{Label: "50 gr", Price: 80},
				{Label: "75 gr", Price: 110},
			},
			Fragrances: []string{"Cempasúchil", "Incienso", "Copal"},
			Available:  true,
		},
		{
			ID:          6,
			Title:       "Vela Aromaterapia Relajante",
			Category:    "belleza",
			Description: "Vela especialmente diseñada para aromaterapia y relajación. Con aceites esenciales naturales que ayudan a reducir el estrés y crear un ambiente de spa en tu hogar.",
			Image:       "images/vela-starlight-rosas.jpeg",
			Types:       []string{"Soya"},
			Sizes: []domain.ProductSize{
				{Label: "75 gr", Price: 95},
				{Label: "150 gr", Price: 165},
			},
			Fragrances: []string{"Eucalipto", "Menta", "Lavanda", "Té Verde", "Hierba Buena", "Aloe Vera"},
			New:        true,
			Available:  true,
		},
		{
			ID:          7,
			Title:       "Vela Masaje Corporal",
			Category:    "belleza",
			Description: "Vela de masaje que se derrite en aceite tibio para masajes relajantes. Perfecta para tratamientos de spa caseros y momentos íntimos de relajación.",
			Image:       "images/vela-starlight-angeles.jpeg",
			Types:       []string{"Soya"},
			Sizes: []domain.ProductSize{
				{Label: "100 gr", Price: 145},
				{Label: "200 gr", Price: 245},
			},
			Fragrances: []string{"Vainilla Sensual", "Ylang Ylang", "Jazmín", "Rosa Búlgara", "Sándalo"},
			Featured:   true,
			Available:  true,
		},
	}
}
