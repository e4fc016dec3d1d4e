// Package seed defines the code-owned starting state: the starter user and the
// three static catalogs. Catalogs always come from here, never from a stored
// snapshot, so shipping a catalog change takes effect on the next load.
package seed

import "github.com/immortalfoodie/Ecosphere/internal/model"

// State returns a fresh copy of the seed state. Each call allocates new
// slices, so a caller mutating the result cannot leak into later loads.
func State() model.EcosphereState {
	return model.EcosphereState{
		User: model.UserProfile{
			ID:              "user-1",
			Name:            "Arjun Sharma",
			Location:        "Mumbai, India",
			Level:           12,
			Points:          2450,
			Rank:            47,
			TotalUsers:      8500,
			JoinDate:        "March 2024",
			EventsJoined:    23,
			ProductsScanned: 156,
			CarbonSavedKg:   2400,
			TreesPlanted:    8,
			CurrentStreak:   15,
			LongestStreak:   28,
		},
		Events:           Events(),
		EventRsvps:       []string{},
		ScannerProducts:  ScannerProducts(),
		ScanHistory:      []model.ScanHistoryItem{},
		StoreProducts:    StoreProducts(),
		Cart:             []model.CartItem{},
		Orders:           []model.Order{},
		TrackerSnapshots: []model.TrackerSnapshot{},
		CourseProgress:   []model.CourseProgress{},
	}
}

// Events returns the static event catalog.
func Events() []model.Event {
	return []model.Event{
		{
			ID:           "1",
			Title:        "Community Beach Cleanup",
			Description:  "Join us for a morning of cleaning up our local beach and protecting marine life.",
			Date:         "2025-01-15",
			Time:         "09:00 AM",
			Location:     "Versova, Mumbai",
			Distance:     "2.3 km away",
			Attendees:    45,
			MaxAttendees: 60,
			Category:     "cleanup",
			Organizer:    "Ocean Guardians NGO",
			Points:       50,
			Image:        "/beach-cleanup-volunteers.png",
			Tags:         []string{"Beach", "Marine Life", "Community"},
		},
		{
			ID:           "2",
			Title:        "Urban Tree Planting Drive",
			Description:  "Help us plant 100 native trees in downtown parks to improve air quality.",
			Date:         "2025-01-18",
			Time:         "08:00 AM",
			Location:     "Bandra, Mumbai",
			Distance:     "5.1 km away",
			Attendees:    32,
			MaxAttendees: 50,
			Category:     "planting",
			Organizer:    "Green City Initiative",
			Points:       75,
			Image:        "/tree-planting-volunteers.png",
			Tags:         []string{"Trees", "Air Quality", "Urban"},
		},
		{
			ID:           "3",
			Title:        "Sustainable Living Workshop",
			Description:  "Learn practical tips for reducing waste and living more sustainably at home.",
			Date:         "2025-01-20",
			Time:         "02:00 PM",
			Location:     "Borivali, Mumbai",
			Distance:     "1.8 km away",
			Attendees:    28,
			MaxAttendees: 40,
			Category:     "workshop",
			Organizer:    "EcoLife Education",
			Points:       30,
			Image:        "/sustainability-workshop.png",
			Tags:         []string{"Education", "Zero Waste", "Lifestyle"},
		},
		{
			ID:           "4",
			Title:        "River Restoration Project",
			Description:  "Help restore native vegetation along the riverbank and remove invasive species.",
			Date:         "2025-01-22",
			Time:         "10:00 AM",
			Location:     "Mithi River, Borivali, Mumbai",
			Distance:     "7.2 km away",
			Attendees:    18,
			MaxAttendees: 25,
			Category:     "restoration",
			Organizer:    "River Keepers Alliance",
			Points:       100,
			Image:        "/river-restoration-volunteers.png",
			Tags:         []string{"Water", "Habitat", "Conservation"},
		},
	}
}

// ScannerProducts returns the static scanner catalog.
func ScannerProducts() []model.ScannerProduct {
	return []model.ScannerProduct{
		{
			ID:              "1",
			Name:            "Organic Cotton T-Shirt",
			Brand:           "EcoWear",
			Barcode:         "5901234123457",
			EcoScore:        92,
			CarbonFootprint: "2.1 kg CO₂",
			WaterUsage:      "45L",
			Recyclable:      true,
			Certifications:  []string{"GOTS", "Fair Trade", "Carbon Neutral"},
			Description:     "Made from 100% organic cotton with sustainable manufacturing processes.",
			Alternatives:    []string{"Hemp T-Shirt", "Bamboo Fiber Tee"},
		},
		{
			ID:              "2",
			Name:            "Plastic Water Bottle",
			Brand:           "AquaCorp",
			Barcode:         "5901234123464",
			EcoScore:        23,
			CarbonFootprint: "8.7 kg CO₂",
			WaterUsage:      "180L",
			Recyclable:      true,
			Certifications:  []string{},
			Description:     "Single-use plastic bottle with high environmental impact.",
			Alternatives:    []string{"Reusable Steel Bottle", "Glass Water Bottle", "Bamboo Bottle"},
		},
	}
}

// StoreProducts returns the static store catalog.
func StoreProducts() []model.StoreProduct {
	return []model.StoreProduct{
		{
			ID:             "1",
			Name:           "Bamboo Fiber Water Bottle",
			Description:    "Sustainable, BPA-free water bottle made from bamboo fiber composite. Perfect for Mumbai's hot climate.",
			Price:          1999,
			OriginalPrice:  2799,
			Discount:       29,
			Rating:         4.8,
			Reviews:        156,
			Category:       "drinkware",
			EcoScore:       95,
			Certifications: []string{"BPA-Free", "Biodegradable", "Carbon Neutral"},
			Image:          "/bamboo-water-bottle-indian-brand.png",
			InStock:        true,
			PointsReward:   25,
			NGOSupport:     "Narmada Bachao Andolan",
		},
		{
			ID:             "2",
			Name:           "Khadi Cotton Tote Bag",
			Description:    "Durable, reusable tote bag made from 100% organic khadi cotton. Support Indian artisans.",
			Price:          899,
			OriginalPrice:  1199,
			Discount:       25,
			Rating:         4.6,
			Reviews:        89,
			Category:       "bags",
			EcoScore:       88,
			Certifications: []string{"Khadi Certified", "Fair Trade"},
			Image:          "/khadi-cotton-tote-bag.png",
			InStock:        true,
			PointsReward:   15,
			NGOSupport:     "Khadi Gramodyog",
		},
		{
			ID:             "3",
			Name:           "Solar Power Bank",
			Description:    "Portable solar charger with 20,000mAh capacity for all your devices. Perfect for India's abundant sunshine.",
			Price:          3999,
			OriginalPrice:  5599,
			Discount:       29,
			Rating:         4.7,
			Reviews:        234,
			Category:       "electronics",
			EcoScore:       82,
			Certifications: []string{"Energy Star", "RoHS Compliant"},
			Image:          "/solar-power-bank-20000mah.png",
			InStock:        true,
			PointsReward:   50,
			NGOSupport:     "Solar Energy Foundation India",
		},
		{
			ID:             "4",
			Name:           "Biodegradable Phone Case",
			Description:    "Protective phone case made from plant-based materials that naturally decompose. Designed for popular Indian smartphone models.",
			Price:          1599,
			OriginalPrice:  1999,
			Discount:       20,
			Rating:         4.5,
			Reviews:        67,
			Category:       "accessories",
			EcoScore:       91,
			Certifications: []string{"Compostable", "Non-Toxic"},
			Image:          "/biodegradable-phone-case-indian-design.png",
			InStock:        false,
			PointsReward:   20,
			NGOSupport:     "Plastic Free India",
		},
		{
			ID:             "5",
			Name:           "Recycled Notebook Set",
			Description:    "Set of 3 notebooks made from 100% recycled paper with natural dyes. Made in Rajasthan.",
			Price:          799,
			OriginalPrice:  1099,
			Discount:       27,
			Rating:         4.4,
			Reviews:        45,
			Category:       "stationery",
			EcoScore:       86,
			Certifications: []string{"FSC Certified", "Recycled Content"},
			Image:          "/recycled-notebook-rajasthan.png",
			InStock:        true,
			PointsReward:   12,
			NGOSupport:     "Chipko Movement Foundation",
		},
		{
			ID:             "6",
			Name:           "Ayurvedic Cleaning Kit",
			Description:    "Complete cleaning kit with plant-based, ayurvedic cleaning products. Chemical-free for Indian homes.",
			Price:          2499,
			OriginalPrice:  3299,
			Discount:       24,
			Rating:         4.9,
			Reviews:        178,
			Category:       "home",
			EcoScore:       94,
			Certifications: []string{"Ayush Certified", "Cruelty-Free"},
			Image:          "/ayurvedic-cleaning-products.png",
			InStock:        true,
			PointsReward:   35,
			NGOSupport:     "Ganga Action Parivar",
		},
		{
			ID:             "7",
			Name:           "Jute Shopping Bag Set",
			Description:    "Set of 3 jute bags in different sizes. Made by women's cooperatives in West Bengal.",
			Price:          649,
			OriginalPrice:  899,
			Discount:       28,
			Rating:         4.3,
			Reviews:        92,
			Category:       "bags",
			EcoScore:       89,
			Certifications: []string{"Fair Trade", "Women Empowerment"},
			Image:          "/handmade-jute-bags-bengal.png",
			InStock:        true,
			PointsReward:   10,
			NGOSupport:     "Self Employed Women's Association",
		},
		{
			ID:             "8",
			Name:           "Copper Water Bottle",
			Description:    "Traditional copper water bottle with ayurvedic benefits. Handcrafted in Moradabad.",
			Price:          1299,
			OriginalPrice:  1699,
			Discount:       24,
			Rating:         4.7,
			Reviews:        134,
			Category:       "drinkware",
			EcoScore:       92,
			Certifications: []string{"Pure Copper", "Handcrafted"},
			Image:          "/copper-water-bottle-handcrafted.png",
			InStock:        true,
			PointsReward:   18,
			NGOSupport:     "Traditional Crafts Council",
		},
	}
}
