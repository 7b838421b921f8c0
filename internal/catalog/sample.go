package catalog

import "github.com/pageza/recipe-rover/backend/internal/model"

// SampleRecipes returns the ten-recipe dataset used to seed new databases.
func SampleRecipes() []model.Recipe {
	return []model.Recipe{
		{
			ID:          1,
			Name:        "Avocado Toast with Poached Egg",
			Description: "A delicious and nutritious breakfast option featuring creamy avocado and perfectly poached eggs.",
			ImageURL:    "https://images.unsplash.com/photo-1525351484163-7529414344d8",
			Tags:        model.JSONBStringArray{"Breakfast", "Healthy", "Vegetarian"},
			Category:    "Dairy and Egg Products",
			Ingredients: model.JSONBStringArray{"avocado", "egg", "sourdough bread", "salt", "pepper", "red pepper flakes"},
			Nutrients:   model.Nutrients{Calories: 320, Protein: 15, Carbs: 28, Fat: 18},
			PrepTime:    10,
			CookTime:    5,
			Instructions: model.JSONBStringArray{
				"Toast the bread until golden and crisp",
				"Mash the avocado and spread on toast",
				"Poach the egg for 3 minutes",
				"Place egg on top of avocado",
				"Season with salt, pepper, and red pepper flakes",
			},
		},
		{
			ID:          2,
			Name:        "Mediterranean Quinoa Bowl",
			Description: "A protein-packed quinoa bowl with fresh vegetables and feta cheese inspired by Mediterranean flavors.",
			ImageURL:    "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			Tags:        model.JSONBStringArray{"Lunch", "Vegetarian", "Mediterranean"},
			Category:    "Cereal Grains and Pasta",
			Ingredients: model.JSONBStringArray{"quinoa", "cucumber", "cherry tomatoes", "red onion", "feta cheese", "olive oil", "lemon juice"},
			Nutrients:   model.Nutrients{Calories: 380, Protein: 12, Carbs: 45, Fat: 16},
			PrepTime:    15,
			CookTime:    20,
			Instructions: model.JSONBStringArray{
				"Cook quinoa according to package instructions",
				"Chop vegetables into bite-sized pieces",
				"Combine quinoa and vegetables in a bowl",
				"Crumble feta cheese on top",
				"Drizzle with olive oil and lemon juice",
			},
		},
		{
			ID:          3,
			Name:        "Chicken Tikka Masala",
			Description: "A classic Indian dish featuring tender chicken in a creamy, spiced tomato sauce.",
			ImageURL:    "https://images.unsplash.com/photo-1565557623262-b51c2513a641",
			Tags:        model.JSONBStringArray{"Dinner", "Indian", "Spicy"},
			Category:    "Poultry Products",
			Ingredients: model.JSONBStringArray{"chicken breast", "yogurt", "garam masala", "tomato sauce", "cream", "garlic", "ginger"},
			Nutrients:   model.Nutrients{Calories: 450, Protein: 35, Carbs: 15, Fat: 25},
			PrepTime:    30,
			CookTime:    40,
			Instructions: model.JSONBStringArray{
				"Marinate chicken in yogurt and spices for at least 30 minutes",
				"Grill or bake chicken until cooked through",
				"Prepare sauce with tomatoes, cream, and spices",
				"Combine chicken with sauce and simmer for 10 minutes",
				"Serve with rice or naan bread",
			},
		},
		{
			ID:          4,
			Name:        "Berry Smoothie Bowl",
			Description: "A refreshing and nutritious smoothie bowl topped with fresh fruits and granola.",
			ImageURL:    "https://images.unsplash.com/photo-1494597564530-871f2b93ac55",
			Tags:        model.JSONBStringArray{"Breakfast", "Vegan", "Healthy"},
			Category:    "Fruits and Fruit Juices",
			Ingredients: model.JSONBStringArray{"mixed berries", "banana", "almond milk", "granola", "chia seeds", "honey"},
			Nutrients:   model.Nutrients{Calories: 280, Protein: 8, Carbs: 52, Fat: 5},
			PrepTime:    10,
			CookTime:    0,
			Instructions: model.JSONBStringArray{
				"Blend berries, banana, and almond milk until smooth",
				"Pour into a bowl",
				"Top with fresh berries, granola, and chia seeds",
				"Drizzle with honey",
			},
		},
		{
			ID:          5,
			Name:        "Baked Salmon with Roasted Vegetables",
			Description: "Flaky salmon fillet with colorful roasted vegetables and fresh herbs.",
			ImageURL:    "https://images.unsplash.com/photo-1467003909585-2f8a72700288",
			Tags:        model.JSONBStringArray{"Dinner", "Seafood", "Healthy"},
			Category:    "Finfish and Shellfish Products",
			Ingredients: model.JSONBStringArray{"salmon fillet", "bell peppers", "zucchini", "red onion", "olive oil", "lemon", "dill"},
			Nutrients:   model.Nutrients{Calories: 420, Protein: 32, Carbs: 18, Fat: 24},
			PrepTime:    15,
			CookTime:    25,
			Instructions: model.JSONBStringArray{
				"Preheat oven to 400°F (200°C)",
				"Arrange vegetables on a baking sheet and drizzle with olive oil",
				"Place salmon on top of vegetables",
				"Season with salt, pepper, and herbs",
				"Bake for 20-25 minutes until salmon is cooked through",
			},
		},
		{
			ID:          6,
			Name:        "Vegetable Stir Fry",
			Description: "A quick and colorful vegetable stir fry with a savory sauce, perfect for weeknight dinners.",
			ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			Tags:        model.JSONBStringArray{"Dinner", "Vegan", "Asian"},
			Category:    "Vegetables and Vegetable Products",
			Ingredients: model.JSONBStringArray{"broccoli", "carrot", "bell pepper", "snap peas", "garlic", "soy sauce", "ginger"},
			Nutrients:   model.Nutrients{Calories: 220, Protein: 8, Carbs: 35, Fat: 5},
			PrepTime:    15,
			CookTime:    10,
			Instructions: model.JSONBStringArray{
				"Chop all vegetables into bite-sized pieces",
				"Heat oil in a wok or large skillet",
				"Add garlic and ginger, stir for 30 seconds",
				"Add vegetables and stir fry for 5-7 minutes",
				"Add sauce and cook for another 2 minutes",
			},
		},
		{
			ID:          7,
			Name:        "Classic Beef Burger",
			Description: "A juicy homemade beef burger with all the traditional toppings on a toasted bun.",
			ImageURL:    "https://images.unsplash.com/photo-1568901346375-23c9450c58cd",
			Tags:        model.JSONBStringArray{"Lunch", "American", "Beef"},
			Category:    "Beef Products",
			Ingredients: model.JSONBStringArray{"ground beef", "burger bun", "lettuce", "tomato", "onion", "cheese", "ketchup", "mustard"},
			Nutrients:   model.Nutrients{Calories: 580, Protein: 30, Carbs: 40, Fat: 32},
			PrepTime:    15,
			CookTime:    10,
			Instructions: model.JSONBStringArray{
				"Form ground beef into patties",
				"Season with salt and pepper",
				"Grill or pan-fry until desired doneness",
				"Toast buns lightly",
				"Assemble burger with toppings and condiments",
			},
		},
		{
			ID:          8,
			Name:        "Chocolate Banana Smoothie",
			Description: "A creamy, chocolatey smoothie that tastes like dessert but is packed with nutrients.",
			ImageURL:    "https://images.unsplash.com/photo-1577805947697-89e18249d767",
			Tags:        model.JSONBStringArray{"Breakfast", "Vegetarian", "Sweet"},
			Category:    "Beverages",
			Ingredients: model.JSONBStringArray{"banana", "cocoa powder", "almond milk", "Greek yogurt", "honey", "ice"},
			Nutrients:   model.Nutrients{Calories: 250, Protein: 12, Carbs: 42, Fat: 4},
			PrepTime:    5,
			CookTime:    0,
			Instructions: model.JSONBStringArray{
				"Combine all ingredients in a blender",
				"Blend until smooth and creamy",
				"Pour into a glass and enjoy immediately",
			},
		},
		{
			ID:          9,
			Name:        "Caprese Salad",
			Description: "A simple Italian salad with fresh tomatoes, mozzarella, and basil, drizzled with balsamic glaze.",
			ImageURL:    "https://images.unsplash.com/photo-1608897013039-887f21d8c804",
			Tags:        model.JSONBStringArray{"Appetizer", "Italian", "Vegetarian"},
			Category:    "Cheese",
			Ingredients: model.JSONBStringArray{"tomatoes", "fresh mozzarella", "fresh basil", "olive oil", "balsamic glaze", "salt", "pepper"},
			Nutrients:   model.Nutrients{Calories: 280, Protein: 14, Carbs: 10, Fat: 20},
			PrepTime:    10,
			CookTime:    0,
			Instructions: model.JSONBStringArray{
				"Slice tomatoes and mozzarella into rounds",
				"Arrange tomato and mozzarella slices on a plate, alternating",
				"Tuck fresh basil leaves between slices",
				"Drizzle with olive oil and balsamic glaze",
				"Season with salt and pepper",
			},
		},
		{
			ID:          10,
			Name:        "Mushroom Risotto",
			Description: "A creamy Italian rice dish with sautéed mushrooms, white wine, and Parmesan cheese.",
			ImageURL:    "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398",
			Tags:        model.JSONBStringArray{"Dinner", "Italian", "Vegetarian"},
			Category:    "Cereal Grains and Pasta",
			Ingredients: model.JSONBStringArray{"arborio rice", "mushrooms", "onion", "garlic", "white wine", "vegetable broth", "Parmesan cheese", "butter"},
			Nutrients:   model.Nutrients{Calories: 420, Protein: 10, Carbs: 58, Fat: 15},
			PrepTime:    15,
			CookTime:    30,
			Instructions: model.JSONBStringArray{
				"Sauté onion and garlic until soft",
				"Add mushrooms and cook until browned",
				"Add rice and toast for 1-2 minutes",
				"Add wine and simmer until absorbed",
				"Gradually add hot broth, stirring constantly",
				"Finish with butter and Parmesan cheese",
			},
		},
	}
}
