package store

import (
	"time"

	"greenshelf/internal/models"
)

// 种子数据：持久化层为空或损坏时的初始内容

func SeedProducts() []*models.Product {
	return []*models.Product{
		{
			ID: "Fruits_Apples", Category: models.CategoryFruits, Name: "Crisp Red Apples",
			Image:   "https://picsum.photos/seed/apples/300/200",
			Info:    "Organic, locally sourced, sweet and juicy. Perfect for snacking or baking.",
			Upvotes: 25, Downvotes: 2,
			Reviews: []models.Review{
				{ID: "review-apples-1", UserID: "user2", UserName: "Jane Doe", Rating: 5, Text: "Absolutely delicious and so fresh!", Date: "2023-10-01"},
				{ID: "review-apples-2", UserID: "user1", UserName: "John Smith", Rating: 4, Text: "Great apples, very crispy.", Date: "2023-10-02"},
			},
			Status: []models.ProductStatus{models.StatusOrganic, models.StatusFresh, models.StatusNoLimit, models.StatusNewProduct},
		},
		{
			ID: "Fruits_Bananas", Category: models.CategoryFruits, Name: "Ripe Bananas",
			Image:   "https://picsum.photos/seed/bananas/300/200",
			Info:    "Rich in potassium, naturally sweet. Ideal for smoothies or a quick energy boost.",
			Upvotes: 40, Downvotes: 1,
			Status:  []models.ProductStatus{models.StatusFresh, models.StatusPerishable},
		},
		{
			ID: "Vegetables_Carrots", Category: models.CategoryVegetables, Name: "Organic Carrots",
			Image:   "https://picsum.photos/seed/carrots/300/200",
			Info:    "Crunchy and sweet, packed with Vitamin A. Great for salads, roasting, or juicing.",
			Upvotes: 30, Downvotes: 0,
			Reviews: []models.Review{
				{ID: "review-carrots-1", UserID: "user1", UserName: "John Smith", Rating: 5, Text: "Best carrots I have had in a while!", Date: "2023-09-28"},
			},
			Status: []models.ProductStatus{models.StatusOrganic, models.StatusFresh, models.StatusOnSale},
		},
		{
			ID: "Vegetables_Broccoli", Category: models.CategoryVegetables, Name: "Fresh Broccoli",
			Image:   "https://picsum.photos/seed/broccoli/300/200",
			Info:    "High in fiber and Vitamin C. Versatile for steaming, stir-frying, or adding to casseroles.",
			Upvotes: 22, Downvotes: 3,
			Status:  []models.ProductStatus{models.StatusFresh, models.StatusLimitedSupply},
		},
		{
			ID: "Dairy_Milk", Category: models.CategoryDairy, Name: "Organic Whole Milk",
			Image:   "https://picsum.photos/seed/milk/300/200",
			Info:    "Creamy and delicious, sourced from grass-fed cows. Perfect for cereals, coffee, or drinking.",
			Upvotes: 50, Downvotes: 1,
			Status:  []models.ProductStatus{models.StatusOrganic, models.StatusPerishable, models.StatusRefrigerated, models.StatusExpiringSoon},
		},
		{
			ID: "Bakery_Bread", Category: models.CategoryBakery, Name: "Sourdough Bread",
			Image:   "https://picsum.photos/seed/bread/300/200",
			Info:    "Artisan sourdough with a tangy flavor and chewy crust. Made with natural starter.",
			Upvotes: 35, Downvotes: 2,
			Status:  []models.ProductStatus{models.StatusFresh, models.StatusContainsSoy},
		},
		{
			ID: "Pantry_OliveOil", Category: models.CategoryPantry, Name: "Extra Virgin Olive Oil",
			Image:   "https://picsum.photos/seed/oliveoil/300/200",
			Info:    "Cold-pressed, rich flavor. Ideal for dressings, cooking, and dipping.",
			Upvotes: 60, Downvotes: 0,
			Status:  []models.ProductStatus{models.StatusOrganic, models.StatusNoLimit, models.StatusShelfStable},
		},
		{
			ID: "Frozen_Peas", Category: models.CategoryFrozen, Name: "Sweet Green Peas",
			Image:   "https://picsum.photos/seed/frozenpeas/300/200",
			Info:    "Quick-frozen to lock in freshness. Easy to prepare.",
			Upvotes: 15, Downvotes: 0,
			Status:  []models.ProductStatus{models.StatusFrozen, models.StatusGMO, models.StatusOnSale},
		},
		{
			ID: "Beverages_OrangeJuice", Category: models.CategoryBeverages, Name: "Fresh Orange Juice",
			Image:   "https://picsum.photos/seed/orangejuice/300/200",
			Info:    "100% pure squeezed orange juice. No added sugar.",
			Upvotes: 28, Downvotes: 1,
			Status:  []models.ProductStatus{models.StatusFresh, models.StatusPerishable, models.StatusHFCS, models.StatusRefrigerated},
		},
		{
			ID: "CannedGoods_Tomatoes", Category: models.CategoryCannedGoods, Name: "Diced Tomatoes",
			Image:   "https://picsum.photos/seed/cannedtomatoes/300/200",
			Info:    "Organic diced tomatoes in juice. Perfect for sauces and stews.",
			Upvotes: 18, Downvotes: 0,
			Status:  []models.ProductStatus{models.StatusOrganic, models.StatusCanned, models.StatusShelfStable},
		},
		{
			ID: "DryGoods_Pasta", Category: models.CategoryDryGoods, Name: "Whole Wheat Pasta",
			Image:   "https://picsum.photos/seed/pasta/300/200",
			Info:    "Nutritious whole wheat spaghetti. Cooks in 8-10 minutes.",
			Upvotes: 22, Downvotes: 1,
			Status:  []models.ProductStatus{models.StatusDryGoods, models.StatusShelfStable, models.StatusVegan},
		},
	}
}

func SeedArticles() []*models.Article {
	return []*models.Article{
		{
			ID:    "article1",
			Title: "The Benefits of a Diet Rich in Fruits",
			Content: "Discover how incorporating a variety of fruits into your daily meals can boost " +
				"your health and well-being. From essential vitamins to powerful antioxidants, fruits " +
				"are nature's powerhouses...",
			Author: "Dr. Health Nut", Date: "2023-09-15",
			Image:      "https://picsum.photos/seed/fruitdiet/400/250",
			IsFeatured: true,
		},
		{
			ID:    "article2",
			Title: "Understanding Organic Labels",
			Content: "Navigating the world of organic food labels can be confusing. This guide breaks " +
				"down what different certifications mean and how to choose the best organic products " +
				"for your family...",
			Author: "Eco Consumer Guide", Date: "2023-09-20",
			Image:      "https://picsum.photos/seed/organiclabels/400/250",
			IsFeatured: true,
		},
		{
			ID:    "article3",
			Title: "Seasonal Eating: Why It Matters",
			Content: "Eating foods that are in season not only tastes better but also supports local " +
				"farmers and is often more nutritious. Learn about the benefits of seasonal eating and " +
				"find tips for your area...",
			Author: "Local Harvest Magazine", Date: "2023-10-05",
			Image: "https://picsum.photos/seed/seasonaleating/400/250",
		},
	}
}

func SeedUsers() []*models.User {
	return []*models.User{
		{
			ID: "user1", Name: "John Smith", IsAdmin: false,
			ProductInteractions: map[string]*models.ProductInteraction{
				"Fruits_Apples":      {ThumbsState: models.ThumbsUp, IsFavorited: true},
				"Vegetables_Carrots": {ThumbsState: models.ThumbsNone, IsFavorited: false},
			},
			ArticleInteractions: map[string]*models.ArticleInteraction{
				"article1": {IsFavorited: true},
			},
		},
		{
			ID: "user2", Name: "Jane Doe", IsAdmin: true,
			ProductInteractions: map[string]*models.ProductInteraction{
				"Fruits_Apples": {ThumbsState: models.ThumbsNone, IsFavorited: false},
				"Dairy_Milk":    {ThumbsState: models.ThumbsUp, IsFavorited: true},
			},
			ArticleInteractions: map[string]*models.ArticleInteraction{
				"article2": {IsFavorited: true},
				"article3": {IsFavorited: false},
			},
		},
		{
			ID: "user3", Name: "Alice Wonderland", IsAdmin: false,
			ProductInteractions: map[string]*models.ProductInteraction{},
			ArticleInteractions: map[string]*models.ArticleInteraction{},
		},
	}
}

func SeedEvents() []*models.Event {
	now := time.Now()
	return []*models.Event{
		{
			ID: "event1", Title: "Farmers Market - Downtown",
			Date: now.AddDate(0, 0, 3), Time: "9:00 AM - 1:00 PM", Location: "Central Square",
			Description: "Join us for the weekly farmers market featuring fresh local produce, artisanal cheeses, and baked goods. Live music from 10 AM.",
			Image:       "https://picsum.photos/seed/farmersmarket/400/200",
		},
		{
			ID: "event2", Title: "Organic Cooking Workshop",
			Date: now.AddDate(0, 0, 10), Time: "6:00 PM - 8:00 PM", Location: "Community Kitchen Hub",
			Description: "Learn to prepare delicious and healthy meals using organic ingredients. Limited spots available, sign up now!",
			Image:       "https://picsum.photos/seed/cookingworkshop/400/200",
		},
		{
			ID: "event3", Title: "Meet the Grower: Berry Farm Visit",
			Date: now.AddDate(0, 0, 20), Time: "1:00 PM - 4:00 PM", Location: "Sunshine Berry Farm",
			Description: "An exclusive tour of Sunshine Berry Farm. Meet the farmers, learn about sustainable practices, and pick your own berries.",
		},
	}
}

func SeedNotices() []*models.HeaderNotice {
	return []*models.HeaderNotice{
		{ID: "notice1", Title: "Fresh Arrivals!", Message: "New batch of organic strawberries just in.", Type: models.NoticeTypeSuccess},
		{ID: "notice2", Title: "Weekend Sale", Message: "20% off all bakery items this Saturday & Sunday.", Type: models.NoticeTypePromo},
		{ID: "notice3", Title: "Store Update", Message: "Extended hours starting next week: 8 AM - 9 PM daily.", Type: models.NoticeTypeInfo},
		{ID: "notice4", Title: "Recipe Contest", Message: "Submit your best healthy recipe for a chance to win!", Type: models.NoticeTypePromo},
		{ID: "notice5", Title: "Weather Advisory", Message: "Possible delivery delays due to weather. Check status.", Type: models.NoticeTypeWarning},
	}
}

func SeedTopics() []*models.DiscussionTopic {
	now := time.Now()
	lastReply := now.Add(-1 * time.Hour)
	return []*models.DiscussionTopic{
		{
			ID: "topic1", Title: "Favorite Healthy Recipes?",
			CreatedByUserID: "user1", CreatedByUserName: "John Smith",
			CreatedAt: now.AddDate(0, 0, -2), LastReplyAt: &lastReply,
			ReplyCount: 2, ViewCount: 15,
		},
		{
			ID: "topic2", Title: "Tips for Reducing Food Waste",
			CreatedByUserID: "user2", CreatedByUserName: "Jane Doe",
			CreatedAt:  now.AddDate(0, 0, -5),
			ReplyCount: 0, ViewCount: 8,
		},
	}
}

func SeedPosts() []*models.DiscussionPost {
	now := time.Now()
	return []*models.DiscussionPost{
		{
			ID: "post1", TopicID: "topic1", UserID: "user2", UserName: "Jane Doe",
			Content: "I love making a big quinoa salad at the start of the week. So versatile!",
			Date:    now.AddDate(0, 0, -1),
		},
		{
			ID: "post2", TopicID: "topic1", UserID: "user3", UserName: "Alice Wonderland",
			Content: "My go-to is overnight oats with lots of berries and nuts. Easy and filling.",
			Date:    now.Add(-1 * time.Hour),
		},
	}
}
