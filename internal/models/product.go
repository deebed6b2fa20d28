package models

// ProductCategory 商品分类（封闭枚举，与侧边栏目录一致）
type ProductCategory string

const (
	CategoryFruits      ProductCategory = "Fruits"
	CategoryVegetables  ProductCategory = "Vegetables"
	CategoryDairy       ProductCategory = "Dairy"
	CategoryBakery      ProductCategory = "Bakery"
	CategoryPantry      ProductCategory = "Pantry"
	CategoryFrozen      ProductCategory = "Frozen Foods"
	CategoryBeverages   ProductCategory = "Beverages"
	CategoryCannedGoods ProductCategory = "Canned Goods"
	CategoryDryGoods    ProductCategory = "Dry Goods & Pasta"
	CategoryMeatSeafood ProductCategory = "Meat & Seafood"
)

// AllCategories 返回全部合法分类，顺序固定
func AllCategories() []ProductCategory {
	return []ProductCategory{
		CategoryFruits, CategoryVegetables, CategoryDairy, CategoryBakery,
		CategoryPantry, CategoryFrozen, CategoryBeverages, CategoryCannedGoods,
		CategoryDryGoods, CategoryMeatSeafood,
	}
}

// ValidCategory 校验分类是否属于封闭集合
func ValidCategory(c ProductCategory) bool {
	for _, v := range AllCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// ProductStatus 商品状态标签，set 语义（同一标签不重复）
type ProductStatus string

const (
	StatusOutOfStock    ProductStatus = "Out of Stock"
	StatusNoLimit       ProductStatus = "No Limit"
	StatusLimitedSupply ProductStatus = "Limited Supply"
	StatusDiscontinued  ProductStatus = "Discontinued"
	StatusExpiringSoon  ProductStatus = "Expiring Soon"
	StatusComingSoon    ProductStatus = "Coming Soon"
	StatusNewProduct    ProductStatus = "New Product"
	StatusOnSale        ProductStatus = "On Sale"
	StatusByTheCase     ProductStatus = "Available by the case"
	StatusPerishable    ProductStatus = "Perishable"

	// 膳食/成分信息
	StatusContainsSoy      ProductStatus = "Contains Soy"
	StatusContainsSeedOils ProductStatus = "Contains Seed Oils"
	StatusLowSodium        ProductStatus = "Low Sodium"
	StatusHFCS             ProductStatus = "HFCS"
	StatusGMO              ProductStatus = "Contains GMO"
	StatusOrganic          ProductStatus = "Organic"
	StatusGlutenFree       ProductStatus = "Gluten-Free"
	StatusVegan            ProductStatus = "Vegan"

	// 商品形态
	StatusFresh        ProductStatus = "Fresh"
	StatusFrozen       ProductStatus = "Frozen"
	StatusCanned       ProductStatus = "Canned"
	StatusPackaged     ProductStatus = "Packaged"
	StatusRefrigerated ProductStatus = "Refrigerated"
	StatusShelfStable  ProductStatus = "Shelf-Stable"
	StatusDryGoods     ProductStatus = "Dry Goods"
)

// AllStatuses 全部合法状态标签
func AllStatuses() []ProductStatus {
	return []ProductStatus{
		StatusOutOfStock, StatusNoLimit, StatusLimitedSupply, StatusDiscontinued,
		StatusExpiringSoon, StatusComingSoon, StatusNewProduct, StatusOnSale,
		StatusByTheCase, StatusPerishable,
		StatusContainsSoy, StatusContainsSeedOils, StatusLowSodium, StatusHFCS,
		StatusGMO, StatusOrganic, StatusGlutenFree, StatusVegan,
		StatusFresh, StatusFrozen, StatusCanned, StatusPackaged,
		StatusRefrigerated, StatusShelfStable, StatusDryGoods,
	}
}

// ValidStatus 校验状态标签是否属于封闭集合
func ValidStatus(s ProductStatus) bool {
	for _, v := range AllStatuses() {
		if v == s {
			return true
		}
	}
	return false
}

// Review 商品评价，内嵌于 Product，生命周期跟随商品
type Review struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"` // 冗余展示名，避免联查
	Rating   int    `json:"rating"`    // 1-5
	Text     string `json:"text"`
	Date     string `json:"date"` // 日历日 YYYY-MM-DD
}

type Product struct {
	ID        string          `json:"id"`
	Category  ProductCategory `json:"category"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Info      string          `json:"info"`
	Upvotes   int             `json:"upvotes"`   // 永不为负
	Downvotes int             `json:"downvotes"` // 永不为负
	Reviews   []Review        `json:"reviews"`
	Status    []ProductStatus `json:"status"`
}

// HasStatus 判断标签是否已存在
func (p *Product) HasStatus(s ProductStatus) bool {
	for _, v := range p.Status {
		if v == s {
			return true
		}
	}
	return false
}

// AddStatus 按 set 语义添加标签，重复添加为幂等
func (p *Product) AddStatus(s ProductStatus) {
	if !p.HasStatus(s) {
		p.Status = append(p.Status, s)
	}
}

// RemoveStatus 移除标签，不存在时无副作用
func (p *Product) RemoveStatus(s ProductStatus) {
	out := p.Status[:0]
	for _, v := range p.Status {
		if v != s {
			out = append(out, v)
		}
	}
	p.Status = out
}

// RankedProduct 派生实体：商品 + 计算出的均分和排名分。不落盘。
type RankedProduct struct {
	Product
	AverageRating float64 `json:"average_rating"`
	Score         float64 `json:"score"`
}
