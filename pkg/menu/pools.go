package menu

// Days are the weekday labels, Monday first.
var Days = [7]string{
	"Понедельник",
	"Вторник",
	"Среда",
	"Четверг",
	"Пятница",
	"Суббота",
	"Воскресенье",
}

// Meal slot keys. The key length feeds the selection seed, so these must not be
// translated or renamed; use MealLabels for display.
const (
	Breakfast = "breakfast"
	Lunch     = "lunch"
	Snack     = "snack"
	Dinner    = "dinner"
)

// MealSlots lists slot keys in canonical order.
var MealSlots = [4]string{Breakfast, Lunch, Snack, Dinner}

// MealLabels maps slot keys to display labels.
var MealLabels = map[string]string{
	Breakfast: "Завтрак",
	Lunch:     "Обед",
	Snack:     "Перекус",
	Dinner:    "Ужин",
}

// Profile names.
const (
	Balanced    = "balanced"
	HighProtein = "highProtein"
	Vegetarian  = "vegetarian"
	Quick       = "quick"
)

// Profiles lists profile names in display order.
var Profiles = []string{Balanced, HighProtein, Vegetarian, Quick}

// Pools maps profile -> meal slot -> candidate dishes. Every pool is non-empty.
var Pools = map[string]map[string][]string{
	Balanced: {
		Breakfast: {
			"Омлет с томатами и тостом",
			"Овсянка с бананом и орехами",
			"Творог с ягодами и мёдом",
			"Яйца + цельнозерновой тост + огурец",
		},
		Lunch: {
			"Куриная грудка с рисом и овощами",
			"Паста с индейкой и томатным соусом",
			"Рыба с картофелем и салатом",
			"Домашний бургер с овощами",
		},
		Snack: {
			"Йогурт + гранола + яблоко",
			"Хлебцы с творожным сыром",
			"Орехи и фрукты",
			"Банан + арахисовая паста",
		},
		Dinner: {
			"Запечённая рыба с овощами",
			"Индейка с гречкой",
			"Курица в духовке + салат",
			"Говядина с овощами на гриле",
		},
	},
	HighProtein: {
		Breakfast: {
			"Яичница с индейкой и сыром",
			"Омлет с курицей и шпинатом",
			"Творог 5% + ягоды + орехи",
			"Скрэмбл с лососем и тостом",
		},
		Lunch: {
			"Стейк + запечённый картофель + салат",
			"Курица терияки с рисом",
			"Тунец + киноа + овощи",
			"Индейка с гречкой и брокколи",
		},
		Snack: {
			"Протеиновый йогурт + фрукт",
			"Сырники без сахара",
			"Яйца и овощи",
			"Протеиновый смузи",
		},
		Dinner: {
			"Лосось + спаржа",
			"Куриные котлеты + овощи",
			"Телятина + салат",
			"Омлет с овощами и сыром",
		},
	},
	Vegetarian: {
		Breakfast: {
			"Овсянка на растительном молоке + ягоды",
			"Тост с авокадо и яйцом",
			"Гранола + йогурт",
			"Сырники с фруктами",
		},
		Lunch: {
			"Паста с грибами и сливочным соусом",
			"Булгур с фалафелем и овощами",
			"Гречка с тофу и овощами",
			"Карри из нута с рисом",
		},
		Snack: {
			"Фрукты + орехи",
			"Хумус с овощами",
			"Йогурт и мюсли",
			"Смузи из банана и ягод",
		},
		Dinner: {
			"Запечённые овощи + сыр",
			"Тофу терияки с салатом",
			"Овощная лазанья",
			"Крем-суп + тост",
		},
	},
	Quick: {
		Breakfast: {
			"Овсянка 5 минут + банан",
			"Йогурт + мюсли + ягоды",
			"Яйца в микроволновке + тост",
			"Тост с арахисовой пастой и яблоком",
		},
		Lunch: {
			"Гречка + готовая курица + овощи",
			"Паста + тунец + томаты",
			"Лаваш-ролл с индейкой",
			"Рис + омлет + овощи",
		},
		Snack: {
			"Протеиновый батончик + фрукт",
			"Орехи + яблоко",
			"Кефир + банан",
			"Творожок + ягоды",
		},
		Dinner: {
			"Рыба в духовке 20 минут + салат",
			"Курица на сковороде + овощи",
			"Омлет с сыром + овощи",
			"Лёгкая шакшука",
		},
	},
}

// IsProfile reports whether name is a known profile.
func IsProfile(name string) bool {
	_, ok := Pools[name]
	return ok
}
