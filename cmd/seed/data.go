package main

// Datos de referencia de la tienda. Las relaciones se expresan por nombre y se resuelven al sembrar.

type categorySeed struct {
	name  string
	types []string
}

type departmentSeed struct {
	name       string
	categories []categorySeed
}

var taxonomy = []departmentSeed{
	{"Women's", []categorySeed{
		{"Tops", []string{"T-Shirt", "Blouse", "Tank Top", "Sweater", "Cardigan", "Crop Top"}},
		{"Bottoms", []string{"Jeans", "Skirt", "Shorts", "Leggings", "Trousers"}},
		{"Dresses", []string{"Maxi Dress", "Mini Dress", "Midi Dress", "Sundress", "Cocktail Dress"}},
		{"Outerwear", []string{"Jacket", "Blazer", "Coat", "Vest"}},
		{"Shoes", []string{"Boots", "Sneakers", "Heels", "Flats", "Sandals"}},
		{"Accessories", []string{"Handbag", "Backpack", "Scarf", "Hat", "Belt"}},
	}},
	{"Men's", []categorySeed{
		{"Tops", []string{"T-Shirt", "Button-Up Shirt", "Polo Shirt", "Sweater", "Hoodie"}},
		{"Bottoms", []string{"Jeans", "Chinos", "Shorts", "Sweatpants"}},
		{"Outerwear", []string{"Jacket", "Blazer", "Coat", "Vest"}},
		{"Shoes", []string{"Sneakers", "Boots", "Dress Shoes", "Sandals"}},
		{"Accessories", []string{"Watch", "Backpack", "Hat", "Belt"}},
	}},
	{"Kids", []categorySeed{
		{"Tops", []string{"T-Shirt", "Sweater", "Hoodie"}},
		{"Bottoms", []string{"Jeans", "Shorts", "Leggings"}},
		{"Dresses", []string{"Dress"}},
		{"Outerwear", []string{"Jacket", "Coat"}},
		{"Shoes", []string{"Sneakers", "Boots", "Sandals"}},
	}},
	{"Unisex", []categorySeed{
		{"Tops", []string{"T-Shirt", "Hoodie", "Tank Top"}},
		{"Bottoms", []string{"Jeans", "Joggers", "Shorts"}},
		{"Outerwear", []string{"Windbreaker", "Bomber Jacket"}},
		{"Accessories", []string{"Tote Bag", "Beanie", "Baseball Cap"}},
	}},
}

type sizeSeed struct {
	value, system string
	sortOrder     int
	notes         string
}

var sizes = func() []sizeSeed {
	out := []sizeSeed{
		{"XXS", "Letter", 1, "Extra Extra Small"},
		{"XS", "Letter", 2, "Extra Small"},
		{"S", "Letter", 3, "Small"},
		{"M", "Letter", 4, "Medium"},
		{"L", "Letter", 5, "Large"},
		{"XL", "Letter", 6, "Extra Large"},
		{"XXL", "Letter", 7, "Extra Extra Large"},
		{"XXXL", "Letter", 8, "3XL"},
	}
	for i, v := range []string{"0", "2", "4", "6", "8", "10", "12", "14", "16", "18", "20", "22", "24"} {
		out = append(out, sizeSeed{v, "US Numeric", 10 + i, "US Size " + v})
	}
	for i, v := range []string{"26", "28", "29", "30", "31", "32", "33", "34", "36", "38", "40", "42"} {
		out = append(out, sizeSeed{v, "Waist", 30 + i, v + `" Waist`})
	}
	for i, v := range []string{"6", "6.5", "7", "7.5", "8", "8.5", "9", "9.5", "10", "10.5", "11", "11.5", "12", "13"} {
		out = append(out, sizeSeed{v, "Shoes", 50 + i, "Shoe Size " + v})
	}
	return append(out, sizeSeed{"One Size", "Universal", 100, "One Size Fits Most"})
}()

type colorSeed struct {
	name, family, hex string
	sortOrder         int
}

var colors = []colorSeed{
	{"Black", "Neutrals", "#000000", 1},
	{"White", "Neutrals", "#FFFFFF", 2},
	{"Gray", "Neutrals", "#808080", 3},
	{"Beige", "Neutrals", "#F5F5DC", 4},
	{"Cream", "Neutrals", "#FFFDD0", 5},
	{"Navy", "Blues", "#000080", 10},
	{"Royal Blue", "Blues", "#4169E1", 11},
	{"Sky Blue", "Blues", "#87CEEB", 12},
	{"Teal", "Blues", "#008080", 13},
	{"Denim Blue", "Blues", "#1560BD", 14},
	{"Red", "Reds", "#FF0000", 20},
	{"Burgundy", "Reds", "#800020", 21},
	{"Pink", "Pinks", "#FFC0CB", 30},
	{"Hot Pink", "Pinks", "#FF69B4", 31},
	{"Blush", "Pinks", "#FFB6C1", 32},
	{"Forest Green", "Greens", "#228B22", 40},
	{"Olive", "Greens", "#808000", 41},
	{"Mint", "Greens", "#98FF98", 42},
	{"Yellow", "Yellows", "#FFFF00", 50},
	{"Mustard", "Yellows", "#FFDB58", 51},
	{"Orange", "Oranges", "#FFA500", 60},
	{"Rust", "Oranges", "#B7410E", 61},
	{"Purple", "Purples", "#800080", 70},
	{"Lavender", "Purples", "#E6E6FA", 71},
	{"Brown", "Browns", "#A52A2A", 80},
	{"Tan", "Browns", "#D2B48C", 81},
	{"Multicolor", "Special", "", 100},
	{"Print/Pattern", "Special", "", 101},
}

type tagSeed struct {
	name, category, description string
}

var tags = []tagSeed{
	{"Vintage", "Era", "Items from past decades"},
	{"Y2K", "Era", "Late 90s/Early 2000s style"},
	{"90s", "Era", "1990s aesthetic"},
	{"80s", "Era", "1980s aesthetic"},
	{"70s", "Era", "1970s aesthetic"},
	{"Retro", "Era", "Vintage-inspired"},
	{"Boho", "Style", "Bohemian style"},
	{"Minimalist", "Style", "Clean, simple design"},
	{"Grunge", "Style", "90s alternative aesthetic"},
	{"Preppy", "Style", "Classic, polished look"},
	{"Streetwear", "Style", "Urban, casual style"},
	{"Punk", "Style", "Alternative, edgy"},
	{"Romantic", "Style", "Soft, feminine details"},
	{"Sporty", "Style", "Athletic-inspired"},
	{"Designer", "Feature", "High-end brand"},
	{"Sustainable", "Feature", "Eco-friendly material"},
	{"Handmade", "Feature", "Artisan crafted"},
	{"Rare Find", "Feature", "Hard to find item"},
	{"Plus Size", "Feature", "Extended sizing"},
	{"Petite", "Feature", "Petite sizing"},
	{"Formal", "Occasion", "Dressy events"},
	{"Casual", "Occasion", "Everyday wear"},
	{"Workwear", "Occasion", "Professional settings"},
	{"Party", "Occasion", "Night out/celebrations"},
	{"Festival", "Occasion", "Music festivals, outdoor events"},
	{"Floral", "Pattern", "Floral print"},
	{"Striped", "Pattern", "Striped pattern"},
	{"Plaid", "Pattern", "Plaid/checkered"},
	{"Solid", "Pattern", "Solid color"},
	{"Graphic", "Pattern", "Graphic print/text"},
}

type conditionSeed struct {
	name, description string
}

var conditions = []conditionSeed{
	{"Excellent", "Like new, no visible wear or defects"},
	{"Good", "Gently used, minor signs of wear"},
	{"Fair", "Noticeable wear but still functional and wearable"},
	{"Poor", "Significant wear, may have defects"},
}

type statusSeed struct {
	name, description string
	availableForSale  bool
}

var statuses = []statusSeed{
	{"Available", "Ready for sale on the floor", true},
	{"Sold", "Item has been purchased", false},
	{"Processing", "Being entered/prepared, not ready for sale yet", false},
	{"On Hold", "Reserved for a customer", false},
	{"Removed", "No longer available (donated, damaged, etc.)", false},
}

type locationSeed struct {
	name, kind, description string
}

var locations = []locationSeed{
	{"Sales Floor - Rack A", "Sales Floor", "Main women's section, rack A"},
	{"Sales Floor - Rack B", "Sales Floor", "Main women's section, rack B"},
	{"Sales Floor - Rack C", "Sales Floor", "Men's section, rack C"},
	{"Sales Floor - Rack D", "Sales Floor", "Men's section, rack D"},
	{"Sales Floor - Shoe Display", "Sales Floor", "Shoe display area"},
	{"Sales Floor - Accessories Wall", "Sales Floor", "Accessories and bags wall"},
	{"Back Room - Bin 1", "Storage", "Back room storage bin 1"},
	{"Back Room - Bin 2", "Storage", "Back room storage bin 2"},
	{"Back Room - Bin 3", "Storage", "Back room storage bin 3"},
	{"Processing Area", "Processing", "Area for intake and item processing"},
	{"Clearance Section", "Sales Floor", "Discounted items section"},
	{"Window Display", "Sales Floor", "Front window display area"},
}

// sampleItems mismas columnas que acepta la importación CSV.
var sampleItems = []itemRow{
	{Department: "Women's", Category: "Tops", ItemType: "T-Shirt", Brand: "Urban Outfitters", SizeSystem: "Letter", Size: "S", Color: "White", Material: "Cotton", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Rack A", Price: "18.00", Description: "Vintage white graphic tee with retro band logo, soft and comfortable", CustomerNotes: "Perfect vintage find!", Season: "All Season", Tags: []string{"Vintage", "Y2K", "Graphic"}},
	{Department: "Women's", Category: "Bottoms", ItemType: "Jeans", Brand: "Levi's", SizeSystem: "Waist", Size: "32", Color: "Denim Blue", Material: "Denim", Condition: "Good", Status: "Available", Location: "Sales Floor - Rack A", Price: "45.00", Description: "Classic 501 high-waisted jeans in perfect condition, authentic vintage fit", CustomerNotes: "Iconic Levi's 501s", Season: "All Season", Tags: []string{"Vintage", "Casual"}},
	{Department: "Women's", Category: "Dresses", ItemType: "Maxi Dress", Brand: "Free People", SizeSystem: "US Numeric", Size: "8", Color: "Denim Blue", Material: "Cotton Blend", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Rack B", Price: "65.00", Description: "Flowy bohemian maxi dress with beautiful floral details, ethereal and romantic", CustomerNotes: "Boho dream dress", Season: "Spring/Summer", Tags: []string{"Boho", "Floral", "Casual"}},
	{Department: "Men's", Category: "Tops", ItemType: "Button-Up Shirt", Brand: "Brooks Brothers", SizeSystem: "Letter", Size: "L", Color: "Navy", Material: "Cotton", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Rack C", Price: "28.00", Description: "Crisp navy button-up shirt, perfect for work or formal occasions", CustomerNotes: "Professional essential", Season: "All Season", Tags: []string{"Preppy", "Workwear", "Solid"}},
	{Department: "Women's", Category: "Shoes", ItemType: "Boots", Brand: "Dr. Martens", SizeSystem: "Shoes", Size: "8", Color: "Black", Material: "Leather", Condition: "Good", Status: "Available", Location: "Sales Floor - Shoe Display", Price: "85.00", Description: "Classic black Dr. Martens combat boots, gently worn with plenty of life left", InternalNotes: "Minor scuffs on toe", CustomerNotes: "Timeless combat boots", Season: "All Season", Tags: []string{"Grunge", "Casual", "Rare Find"}},
	{Department: "Women's", Category: "Tops", ItemType: "Sweater", Brand: "Gap", SizeSystem: "Letter", Size: "M", Color: "Brown", Material: "Wool Blend", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Rack A", Price: "32.00", Description: "Cozy brown knit sweater, perfect fall essential with classic styling", CustomerNotes: "Warm and comfortable", Season: "Fall/Winter", Tags: []string{"Casual", "Solid"}},
	{Department: "Women's", Category: "Accessories", ItemType: "Handbag", Brand: "Coach", SizeSystem: "Universal", Size: "One Size", Color: "Brown", Material: "Leather", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Accessories Wall", Price: "125.00", Description: "Vintage Coach leather handbag in mint condition, timeless design", CustomerNotes: "Rare vintage Coach find!", Season: "All Season", Tags: []string{"Vintage", "Designer", "Rare Find"}},
	{Department: "Unisex", Category: "Tops", ItemType: "T-Shirt", Brand: "Nike", SizeSystem: "Letter", Size: "L", Color: "Black", Material: "Cotton", Condition: "Good", Status: "Available", Location: "Sales Floor - Rack C", Price: "15.00", Description: "Classic black Nike tee with iconic swoosh, athletic fit", CustomerNotes: "Athletic essential", Season: "All Season", Tags: []string{"Sporty", "Casual", "Solid"}},
	{Department: "Men's", Category: "Outerwear", ItemType: "Jacket", Brand: "Carhartt", SizeSystem: "Letter", Size: "XL", Color: "Brown", Material: "Canvas", Condition: "Good", Status: "Available", Location: "Sales Floor - Rack D", Price: "55.00", Description: "Rugged brown Carhartt work jacket, authentic vintage with character", InternalNotes: "Minor wear on elbows", CustomerNotes: "Iconic workwear piece", Season: "Fall/Winter", Tags: []string{"Vintage", "Workwear", "Rare Find"}},
	{Department: "Women's", Category: "Dresses", ItemType: "Cocktail Dress", Brand: "Reformation", SizeSystem: "US Numeric", Size: "8", Color: "Red", Material: "Polyester", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Rack B", Price: "78.00", Description: "Stunning red cocktail dress perfect for special events, sustainable brand", CustomerNotes: "Show-stopping dress", Season: "All Season", Tags: []string{"Formal", "Party", "Sustainable"}},
	{Department: "Kids", Category: "Tops", ItemType: "T-Shirt", Brand: "Old Navy", SizeSystem: "US Numeric", Size: "10", Color: "Red", Material: "Cotton", Condition: "Good", Status: "Available", Location: "Back Room - Bin 1", Price: "8.00", Description: "Kids red graphic tee with fun print, good condition", CustomerNotes: "Fun kids tee", Season: "All Season", Tags: []string{"Casual", "Graphic"}},
	{Department: "Women's", Category: "Accessories", ItemType: "Scarf", Brand: "Burberry", SizeSystem: "Universal", Size: "One Size", Color: "Multicolor", Material: "Silk", Condition: "Excellent", Status: "Available", Location: "Sales Floor - Accessories Wall", Price: "95.00", Description: "Authentic Burberry plaid scarf, designer vintage piece in excellent condition", CustomerNotes: "Designer vintage scarf", Season: "Fall/Winter", Tags: []string{"Vintage", "Designer", "Rare Find", "Plaid"}},
}
