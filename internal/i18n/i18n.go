// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// Package i18n holds the Russian and Kazakh UI dictionaries. The client
// fetches the dictionary for its locale instead of bundling copy.
package i18n

import "glamora/internal/catalog"

// Dictionary is the full set of localized UI strings for one locale.
type Dictionary struct {
	Common       Common       `json:"common"`
	Home         Home         `json:"home"`
	CatalogPage  CatalogPage  `json:"catalogPage"`
	CategoryPage CategoryPage `json:"categoryPage"`
	ProductPage  ProductPage  `json:"productPage"`
	CartPage     CartPage     `json:"cartPage"`
	Footer       Footer       `json:"footer"`
	SEO          SEO          `json:"seo"`
}

type Common struct {
	Brand            string `json:"brand"`
	City             string `json:"city"`
	Catalog          string `json:"catalog"`
	OrderNow         string `json:"orderNow"`
	FreeConsult      string `json:"freeConsult"`
	SearchByName     string `json:"searchByName"`
	AddToCart        string `json:"addToCart"`
	GoToCart         string `json:"goToCart"`
	Cart             string `json:"cart"`
	Confirm          string `json:"confirm"`
	Contacts         string `json:"contacts"`
	CheckoutWA       string `json:"checkoutWA"`
	Total            string `json:"total"`
	Qty              string `json:"qty"`
	EmptyCart        string `json:"emptyCart"`
	BackToCatalog    string `json:"backToCatalog"`
	Pcs              string `json:"pcs"`
	Home             string `json:"home"`
	Price            string `json:"price"`
	PriceCheck       string `json:"priceCheck"`
	Volume           string `json:"volume"`
	Benefits         string `json:"benefits"`
	Description      string `json:"description"`
	Ingredients      string `json:"ingredients"`
	ContinueShopping string `json:"continueShopping"`
	Subtotal         string `json:"subtotal"`
	AddedToCart      string `json:"addedToCart"`
}

type Home struct {
	HeroTitle          string   `json:"heroTitle"`
	HeroTaglineLines   []string `json:"heroTaglineLines"`
	CTACatalog         string   `json:"ctaCatalog"`
	CTAOrderNowPrefill string   `json:"ctaOrderNowPrefill"`
	CTAConsultPrefill  string   `json:"ctaConsultPrefill"`
	MiniCartLabel      string   `json:"miniCartLabel"`
	MiniCartEmpty      string   `json:"miniCartEmpty"`
}

type CatalogPage struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Empty    string `json:"empty"`
}

type CategoryPage struct {
	SearchPlaceholder string `json:"searchPlaceholder"`
	NoResults         string `json:"noResults"`
}

type ProductPage struct {
	Benefits         string `json:"benefits"`
	Description      string `json:"description"`
	Ingredients      string `json:"ingredients"`
	IngredientsEmpty string `json:"ingredientsEmpty"`
	Volume           string `json:"volume"`
	GoBack           string `json:"goBack"`
}

type CartPage struct {
	Title         string `json:"title"`
	SummaryTitle  string `json:"summaryTitle"`
	EmptyState    string `json:"emptyState"`
	WhatsAppIntro string `json:"whatsappIntro"`
	Remove        string `json:"remove"`
}

type Footer struct {
	Legal    string `json:"legal"`
	WhatsApp string `json:"whatsapp"`
	ToggleRU string `json:"toggleRu"`
	ToggleKK string `json:"toggleKk"`
}

type SEOEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type SEO struct {
	Home    SEOEntry `json:"home"`
	Catalog SEOEntry `json:"catalog"`
	Cart    SEOEntry `json:"cart"`
}

var russian = Dictionary{
	Common: Common{
		Brand:            "glamora_kz",
		City:             "Алматы",
		Catalog:          "Каталог товаров",
		OrderNow:         "Хочу заказать",
		FreeConsult:      "Бесплатная консультация",
		SearchByName:     "Поиск по названию",
		AddToCart:        "В корзину",
		GoToCart:         "Перейти в корзину",
		Cart:             "Корзина",
		Confirm:          "Подтверждение",
		Contacts:         "Контакты",
		CheckoutWA:       "Оформить через WhatsApp",
		Total:            "Итого",
		Qty:              "Кол-во",
		EmptyCart:        "Ваша корзина пуста",
		BackToCatalog:    "Вернуться к каталогу",
		Pcs:              "шт.",
		Home:             "Главная",
		Price:            "Цена",
		PriceCheck:       "Уточните цену у продавца",
		Volume:           "Объем",
		Benefits:         "Преимущества",
		Description:      "Описание",
		Ingredients:      "Состав",
		ContinueShopping: "Продолжить покупки",
		Subtotal:         "Промежуточный итог",
		AddedToCart:      "Товар добавлен в корзину",
	},
	Home: Home{
		HeroTitle: "Корейская уходовая косметика",
		HeroTaglineLines: []string{
			"УХОДОВАЯ КОСМЕТИКА | АЛМАТЫ — ОРИГИНАЛЬНАЯ КОСМЕТИКА 100%. 💯",
			"Найди свой идеальный уход. 🚛 Бесплатная консультация и доставка.",
			"🎁 Подарки к каждому заказу.",
		},
		CTACatalog:         "Каталог товаров (г. Алматы)",
		CTAOrderNowPrefill: "Здравствуйте! Хочу сделать заказ в glamora_kz. Подскажите, пожалуйста.",
		CTAConsultPrefill:  "Здравствуйте! Нужна консультация по уходу в glamora_kz.",
		MiniCartLabel:      "В корзине",
		MiniCartEmpty:      "Корзина пуста",
	},
	CatalogPage: CatalogPage{
		Title:    "Категории",
		Subtitle: "Выберите категорию, чтобы увидеть доступные продукты.",
		Empty:    "Категория временно пуста — мы пополним позиции совсем скоро.",
	},
	CategoryPage: CategoryPage{
		SearchPlaceholder: "Поиск по названию",
		NoResults:         "Нет товаров по вашему запросу. Попробуйте другой фильтр.",
	},
	ProductPage: ProductPage{
		Benefits:         "Преимущества",
		Description:      "Описание",
		Ingredients:      "Состав",
		IngredientsEmpty: "Состав уточняется",
		Volume:           "Объем",
		GoBack:           "Назад к каталогу",
	},
	CartPage: CartPage{
		Title:         "Корзина",
		SummaryTitle:  "Подтверждение",
		EmptyState:    "Ваша корзина пуста — добавьте товары из каталога.",
		WhatsAppIntro: "Проверьте заказ и нажмите кнопку, чтобы отправить заявку в WhatsApp.",
		Remove:        "Удалить",
	},
	Footer: Footer{
		Legal:    "© glamora_kz. Оригинальная корейская косметика в Алматы.",
		WhatsApp: "Написать в WhatsApp",
		ToggleRU: "Русский",
		ToggleKK: "Қазақша",
	},
	SEO: SEO{
		Home: SEOEntry{
			Title:       "Покупайте корейскую уходовую косметику в Алматы | glamora_kz",
			Description: "glamora_kz — мини-магазин корейской уходовой косметики в Алматы. Бесплатная консультация и доставка.",
		},
		Catalog: SEOEntry{
			Title:       "Каталог уходовой косметики в Алматы | glamora_kz",
			Description: "Выбирайте уход за кожей: очищение, сыворотки, кремы и другие средства с доставкой по Алматы.",
		},
		Cart: SEOEntry{
			Title:       "Корзина — заказ корейской косметики в Алматы | glamora_kz",
			Description: "Проверьте выбранные товары и оформите заказ на корейскую уходовую косметику glamora_kz в Алматы через WhatsApp.",
		},
	},
}

var kazakh = Dictionary{
	Common: Common{
		Brand:            "glamora_kz",
		City:             "Алматы",
		Catalog:          "Тауарлар каталогы",
		OrderNow:         "Тапсырыс бергім келеді",
		FreeConsult:      "Тегін консультация",
		SearchByName:     "Атауы бойынша іздеу",
		AddToCart:        "Себетке қосу",
		GoToCart:         "Себетке өту",
		Cart:             "Себет",
		Confirm:          "Растау",
		Contacts:         "Байланыс",
		CheckoutWA:       "WhatsApp арқылы тапсырыс беру",
		Total:            "Барлығы",
		Qty:              "Саны",
		EmptyCart:        "Себет бос",
		BackToCatalog:    "Каталогқа оралу",
		Pcs:              "дана",
		Home:             "Басты бет",
		Price:            "Бағасы",
		PriceCheck:       "Бағаны сатушыдан нақтылаңыз",
		Volume:           "Көлемі",
		Benefits:         "Артықшылықтары",
		Description:      "Сипаттама",
		Ingredients:      "Құрамы",
		ContinueShopping: "Сатып алуды жалғастыру",
		Subtotal:         "Аралық сома",
		AddedToCart:      "Тауар себетке қосылды",
	},
	Home: Home{
		HeroTitle: "Кореяның тері күтім косметикасы",
		HeroTaglineLines: []string{
			"ТЕРІ КҮТІМІ | АЛМАТЫ — 100% ТҮПНҰСҚА КОСМЕТИКА. 💯",
			"Өз күтіміңді тап. 🚛 Тегін консультация және жеткізу.",
			"🎁 Әр тапсырысқа сыйлық.",
		},
		CTACatalog:         "Тауарлар каталогы (Алматы)",
		CTAOrderNowPrefill: "Сәлеметсіз бе! glamora_kz дүкенінен тапсырыс бергім келеді.",
		CTAConsultPrefill:  "Сәлеметсіз бе! glamora_kz бойынша кеңес керек еді.",
		MiniCartLabel:      "Себетте",
		MiniCartEmpty:      "Себет бос",
	},
	CatalogPage: CatalogPage{
		Title:    "Санаттар",
		Subtitle: "Қолжетімді өнімдерді көру үшін санатты таңдаңыз.",
		Empty:    "Санат бос. Жақында жаңа өнімдер қосылады.",
	},
	CategoryPage: CategoryPage{
		SearchPlaceholder: "Атауы бойынша іздеу",
		NoResults:         "Сұраныс бойынша тауар табылмады. Басқа сөзді қолданып көріңіз.",
	},
	ProductPage: ProductPage{
		Benefits:         "Артықшылықтары",
		Description:      "Сипаттама",
		Ingredients:      "Құрамы",
		IngredientsEmpty: "Құрамы нақтылануда",
		Volume:           "Көлемі",
		GoBack:           "Каталогқа оралу",
	},
	CartPage: CartPage{
		Title:         "Себет",
		SummaryTitle:  "Растау",
		EmptyState:    "Себет бос — каталогтан тауар қосыңыз.",
		WhatsAppIntro: "Тапсырысты тексеріп, WhatsApp арқылы жіберу үшін түймені басыңыз.",
		Remove:        "Жою",
	},
	Footer: Footer{
		Legal:    "© glamora_kz. Алматыда түпнұсқа корей косметикасы.",
		WhatsApp: "WhatsApp арқылы жазу",
		ToggleRU: "Орысша",
		ToggleKK: "Қазақша",
	},
	SEO: SEO{
		Home: SEOEntry{
			Title:       "Кореяның тері күтімі косметикасы Алматыда | glamora_kz",
			Description: "glamora_kz — Алматыдағы түпнұсқа корей тері күтімі косметикасы. Тегін консультация және жеткізу.",
		},
		Catalog: SEOEntry{
			Title:       "Тері күтімі косметикасының каталогы Алматыда | glamora_kz",
			Description: "Күтім құралдары: тазарту, сарысулар, кремдер және тағы басқаларын Алматыдан таңдаңыз.",
		},
		Cart: SEOEntry{
			Title:       "Себет — корей косметикасына тапсырыс Алматыда | glamora_kz",
			Description: "Таңдалған өнімдерді тексеріп, glamora_kz корей косметикасына тапсырысты WhatsApp арқылы рәсімдеңіз.",
		},
	},
}

// Dict returns the dictionary for a locale.
func Dict(loc catalog.Locale) *Dictionary {
	if loc == catalog.LocaleKK {
		return &kazakh
	}
	return &russian
}
