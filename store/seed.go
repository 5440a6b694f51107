package store

import (
	"time"

	"github.com/optombazar7-cpu/SportZone/models"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// seedProducts is the sample catalog loaded into every fresh store. Seed
// ids are fixed strings; ids generated at runtime never collide with them
// because runtime ids are UUIDs.
func seedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:            "1",
			Name:          "Nike Air Max",
			Description:   "Premium yugurish poyabzali, qulay va zamonaviy dizayn",
			Price:         450000,
			OriginalPrice: intPtr(600000),
			Category:      "poyabzal",
			Subcategory:   strPtr("yugurish"),
			ImageURL:      "https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1460353581641-37baddab0fa2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1551698618-1dfe5d97d256?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:       strPtr("https://www.youtube.com/embed/dQw4w9WgXcQ"),
			Sizes:          []string{"40", "41", "42", "43", "44"},
			InStock:        true,
			IsSpecialOffer: true,
			CreatedAt:      now,
		},
		{
			ID:            "2",
			Name:          "Fitnes Rezinalari",
			Description:   "Professional mashqlar uchun yuqori sifatli rezina to'plami",
			Price:         85000,
			OriginalPrice: intPtr(120000),
			Category:      "jihozlar",
			Subcategory:   strPtr("fitnes"),
			ImageURL:      "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1571902943202-507ec2618e8f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1517838277536-f5f99be501cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Sizes:          []string{},
			InStock:        true,
			IsSpecialOffer: true,
			CreatedAt:      now,
		},
		{
			ID:            "3",
			Name:          "Sport Ko'ylak",
			Description:   "Naf oladigan, professional sport ko'ylak",
			Price:         160000,
			OriginalPrice: intPtr(200000),
			Category:      "kiyim",
			Subcategory:   strPtr("ko'ylak"),
			ImageURL:      "https://images.unsplash.com/photo-1583743089695-4b816a340f82?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1583743089695-4b816a340f82?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1434682881908-b43d0467b798?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:       strPtr("https://www.youtube.com/embed/abc123"),
			Sizes:          []string{"S", "M", "L", "XL"},
			InStock:        true,
			IsSpecialOffer: true,
			CreatedAt:      now,
		},
		{
			ID:            "4",
			Name:          "Basketbol Poyabzali",
			Description:   "Professional basketbol o'yini uchun maxsus poyabzal",
			Price:         520000,
			OriginalPrice: intPtr(800000),
			Category:      "poyabzal",
			Subcategory:   strPtr("basketbol"),
			ImageURL:      "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1608231387042-66d1773070a5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:       strPtr("https://www.youtube.com/embed/xyz789"),
			Sizes:          []string{"40", "41", "42", "43", "44", "45"},
			InStock:        true,
			IsSpecialOffer: true,
			CreatedAt:      now,
		},
		{
			ID:          "5",
			Name:        "Sport Naushnik",
			Description: "Simsiz, suvga chidamli sport naushnik",
			Price:       250000,
			Category:    "aksessuarlar",
			Subcategory: strPtr("audio"),
			ImageURL:    "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1484704849700-f032a568e944?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Sizes:        []string{},
			InStock:      true,
			IsNewArrival: true,
			CreatedAt:    now,
		},
		{
			ID:          "6",
			Name:        "Yoga Matı",
			Description: "Professional yoga va fitnes uchun mat",
			Price:       120000,
			Category:    "jihozlar",
			Subcategory: strPtr("yoga"),
			ImageURL:    "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1506629905531-f2c4d15ddc8e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1518611012118-696072aa579a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:     strPtr("https://www.youtube.com/embed/yoga123"),
			Sizes:        []string{},
			InStock:      true,
			IsNewArrival: true,
			CreatedAt:    now,
		},
		{
			ID:          "7",
			Name:        "Smart Soat",
			Description: "Fitnes kuzatuv va sport rejimi bilan",
			Price:       890000,
			Category:    "aksessuarlar",
			Subcategory: strPtr("texnologiya"),
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1441986300917-64674bd600d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Sizes:        []string{},
			InStock:      true,
			IsNewArrival: true,
			CreatedAt:    now,
		},
		{
			ID:          "8",
			Name:        "Mashq Qo'lqoplari",
			Description: "Ağırlık ko'tarish va mashq uchun",
			Price:       75000,
			Category:    "aksessuarlar",
			Subcategory: strPtr("mashq"),
			ImageURL:    "https://pixabay.com/get/gbfe5de2c076fd5c45e4b5bd9b7ae34fe83e1b0ebba0bd6f390c7a0e9cd33bdd75b9c2a85b34af26df88bc2c5c23fe892f49c7128c79d49a60e93c0b244d611b5_1280.jpg",
			Images: []string{
				"https://images.unsplash.com/photo-1541534741688-6078c6bfb5c5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			Sizes:        []string{"S", "M", "L"},
			InStock:      true,
			IsNewArrival: true,
			CreatedAt:    now,
		},
		{
			ID:          "9",
			Name:        "Sport Suv Idishi",
			Description: "750ml sig'imli, harorat saqlovchi",
			Price:       45000,
			Category:    "aksessuarlar",
			Subcategory: strPtr("hydration"),
			ImageURL:    "https://images.unsplash.com/photo-1523362628745-0c100150b504?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1523362628745-0c100150b504?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1624969862293-b749659ccc4e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:     strPtr("https://www.youtube.com/embed/hydration123"),
			Sizes:        []string{},
			InStock:      true,
			IsBestSeller: true,
			CreatedAt:    now,
		},
		{
			ID:          "10",
			Name:        "Yugurish Shorti",
			Description: "Naf oladigan, yengil sport shorti",
			Price:       95000,
			Category:    "kiyim",
			Subcategory: strPtr("short"),
			ImageURL:    "https://pixabay.com/get/g790492e2ef04ae814d42c61fc39a60e7d422d28b430996dff04248b06f113042ba2e239573da9d7e48fc673bafcff9f3729fe13bb2466c573974c34c251cdc79_1280.jpg",
			Images: []string{
				"https://images.unsplash.com/photo-1506629905531-f2c4d15ddc8e?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1434494878577-86c23bcb06b9?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:     strPtr("https://www.youtube.com/embed/shorts123"),
			Sizes:        []string{"S", "M", "L", "XL"},
			InStock:      true,
			IsBestSeller: true,
			CreatedAt:    now,
		},
		{
			ID:          "11",
			Name:        "Gantel To'plami",
			Description: "2x5kg, chidamli va professional",
			Price:       280000,
			Category:    "jihozlar",
			Subcategory: strPtr("ağırlık"),
			ImageURL:    "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=300",
			Images: []string{
				"https://images.unsplash.com/photo-1571902943202-507ec2618e8f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1517838277536-f5f99be501cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1534438327276-14e5300c3a48?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
				"https://images.unsplash.com/photo-1583454110551-21f2fa2afe61?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			},
			VideoURL:     strPtr("https://www.youtube.com/embed/weights123"),
			Sizes:        []string{},
			InStock:      true,
			IsBestSeller: true,
			CreatedAt:    now,
		},
	}
}
