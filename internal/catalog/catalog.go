package catalog

import "strings"

// Category groups the parts the studio can install. The set is closed and
// mirrors the frontend constants.
type Category struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Part struct {
	ID          string `json:"id"`
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImagePath   string `json:"imagePath"`
	Price       int    `json:"price"`
}

var categories = []Category{
	{
		ID:          "wheels",
		Label:       "Wheels & Rims",
		Description: "Change the design of your wheels.",
		Icon:        "🛞",
	},
	{
		ID:          "roof",
		Label:       "Roof Storage",
		Description: "Add roof boxes, racks, or baskets.",
		Icon:        "📦",
	},
	{
		ID:          "body",
		Label:       "Body Style Accent",
		Description: "Front lip, side skirts, or spoiler.",
		Icon:        "🏎️",
	},
}

var parts = []Part{
	{
		ID:          "wheel_sport_black_01",
		CategoryID:  "wheels",
		Name:        "Sport Black Alloy",
		Description: "Aggressive black multi-spoke sports wheel.",
		ImagePath:   "/parts/wheels/wheel_sport_black_01.png",
		Price:       299,
	},
	{
		ID:          "wheel_lux_silver_02",
		CategoryID:  "wheels",
		Name:        "Luxury Silver Multi-Spoke",
		Description: "Clean silver multi-spoke design for a premium look.",
		ImagePath:   "/parts/wheels/wheel_lux_silver_02.png",
		Price:       349,
	},
	{
		ID:          "wheel_offroad_bronze_03",
		CategoryID:  "wheels",
		Name:        "Off-Road Bronze Deep Dish",
		Description: "Chunky off-road wheel in bronze finish.",
		ImagePath:   "/parts/wheels/wheel_offroad_bronze_03.png",
		Price:       399,
	},
	{
		ID:          "roof_box_black_01",
		CategoryID:  "roof",
		Name:        "Matte Black Roof Box",
		Description: "Sleek roof box for extra storage.",
		ImagePath:   "/parts/roof/roof_box_black_01.png",
		Price:       449,
	},
	{
		ID:          "roof_rack_silver_02",
		CategoryID:  "roof",
		Name:        "Silver Roof Rack Rails",
		Description: "Low-profile roof rails for mounting gear.",
		ImagePath:   "/parts/roof/roof_rack_silver_02.png",
		Price:       199,
	},
	{
		ID:          "roof_basket_black_03",
		CategoryID:  "roof",
		Name:        "Black Roof Basket",
		Description: "Open basket for camping and outdoor trips.",
		ImagePath:   "/parts/roof/roof_basket_black_03.png",
		Price:       279,
	},
	{
		ID:          "body_frontlip_black_01",
		CategoryID:  "body",
		Name:        "Black Front Lip Spoiler",
		Description: "Low front lip to sharpen the front view.",
		ImagePath:   "/parts/body/body_frontlip_black_01.png",
		Price:       189,
	},
	{
		ID:          "body_sideskirt_color_02",
		CategoryID:  "body",
		Name:        "Color-Matched Side Skirts",
		Description: "Side skirts that extend the body line.",
		ImagePath:   "/parts/body/body_sideskirt_color_02.png",
		Price:       249,
	},
	{
		ID:          "body_spoiler_black_03",
		CategoryID:  "body",
		Name:        "Subtle Rear Roof Spoiler",
		Description: "Clean rear spoiler for a sportier silhouette.",
		ImagePath:   "/parts/body/body_spoiler_black_03.png",
		Price:       179,
	},
}

func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

func CategoryByID(id string) (Category, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

func Parts() []Part {
	out := make([]Part, len(parts))
	copy(out, parts)
	return out
}

func PartsByCategory(categoryID string) []Part {
	categoryID = strings.ToLower(strings.TrimSpace(categoryID))
	var out []Part
	for _, p := range parts {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func PartByName(name string) (Part, bool) {
	name = strings.TrimSpace(name)
	for _, p := range parts {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Part{}, false
}
