package main

import (
	"log"

	"github.com/avoronin/ar_shop/internal/config"
	"github.com/avoronin/ar_shop/internal/models"
)

func strptr(s string) *string { return &s }

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("count error: %v", err)
	}
	if count > 0 {
		log.Printf("catalog already has %d products, nothing to seed", count)
		return
	}

	products := []models.Product{
		{
			Name:        "Nordic Oak Chair",
			Description: "Solid oak dining chair with a curved backrest",
			Price:       129.90,
			Category:    strptr("chairs"),
			ModelPath:   "/models/nordic_oak_chair.glb",
			ImageURL:    "/images/nordic_oak_chair.jpg",
			Material:    "oak",
			Color:       "natural",
			Dimensions:  models.Dimensions{"width": 45, "height": 92, "depth": 50},
			InStock:     true,
		},
		{
			Name:        "Loft Coffee Table",
			Description: "Industrial coffee table, steel frame and walnut top",
			Price:       249.00,
			Category:    strptr("tables"),
			ModelPath:   "/models/loft_coffee_table.glb",
			ImageURL:    "/images/loft_coffee_table.jpg",
			Material:    "walnut, steel",
			Color:       "dark brown",
			Dimensions:  models.Dimensions{"width": 110, "height": 45, "depth": 60},
			InStock:     true,
		},
		{
			Name:        "Velvet Sofa Marlin",
			Description: "Three-seat sofa in emerald velvet",
			Price:       899.00,
			Category:    strptr("sofas"),
			ModelPath:   "/models/velvet_sofa_marlin.glb",
			ImageURL:    "/images/velvet_sofa_marlin.jpg",
			Material:    "velvet",
			Color:       "emerald",
			Dimensions:  models.Dimensions{"width": 215, "height": 85, "depth": 95},
			InStock:     true,
		},
		{
			Name:        "Aria Floor Lamp",
			Description: "Minimalist floor lamp with a linen shade",
			Price:       79.50,
			Category:    strptr("lighting"),
			ModelPath:   "/models/aria_floor_lamp.glb",
			ImageURL:    "/images/aria_floor_lamp.jpg",
			Material:    "metal, linen",
			Color:       "white",
			Dimensions:  models.Dimensions{"width": 35, "height": 150, "depth": 35},
			InStock:     false,
		},
		{
			Name:        "Billund Bookshelf",
			Description: "Five-shelf bookcase in white ash",
			Price:       189.00,
			Category:    strptr("storage"),
			ModelPath:   "/models/billund_bookshelf.glb",
			ImageURL:    "/images/billund_bookshelf.jpg",
			Material:    "ash",
			Color:       "white",
			Dimensions:  models.Dimensions{"width": 80, "height": 201, "depth": 28},
			InStock:     true,
		},
	}

	if err := db.Create(&products).Error; err != nil {
		log.Fatalf("seed error: %v", err)
	}
	log.Printf("seeded %d products", len(products))
}
