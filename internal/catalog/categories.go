package catalog

// FoodCategories is the fixed list offered by the category facet, independent
// of which categories the loaded recipes actually use.
var FoodCategories = []string{
	"Baked Products",
	"Beans, peas, legumes",
	"Beef Products",
	"Beverages",
	"Breads & Buns",
	"Cabbage",
	"Cake, Cookie & Cupcake Mixes",
	"Canned & Bottled Beans",
	"Canned Fruit",
	"Cereal Grains and Pasta",
	"Cheese",
	"Chips, Pretzels & Snacks",
	"Cream",
	"Dairy and Egg Products",
	"Energy, Protein & Muscle Recovery Drinks",
	"Fats and Oils",
	"Finfish and Shellfish Products",
	"Fruit & Vegetable Juice, Nectars & Fruit Drinks",
	"Fruits and Fruit Juices",
	"Lamb, goat, game",
	"Lamb, Veal, and Game Products",
	"Legumes and Legume Products",
	"Meal Replacement Supplements",
	"Milk",
	"Milk, whole",
	"Nut & Seed Butters",
	"Nut and Seed Products",
	"Nuts and seeds",
	"Olives, pickles, pickled vegetables",
	"Other Cooking Sauces",
	"Other fruits and fruit salads",
	"Other Snacks",
	"Other vegetables and combinations",
	"Pasta by Shape & Type",
	"Plant Based Milk",
	"Pork Products",
	"Poultry Products",
	"Restaurant Foods",
	"Salad dressings and vegetable oils",
	"Sausages and Luncheon Meats",
	"Soups, Sauces and Gravies",
	"Specialty Formula Supplements",
	"Spices and Herbs",
	"String beans",
	"Sweets",
	"Vegetable and Lentil Mixes",
	"Vegetables and Vegetable Products",
}
