// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

// Package whatsapp composes pre-filled wa.me links. Checkout is a WhatsApp
// message to the shop owner; there is no payment or order pipeline behind it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"glamora/internal/catalog"
)

// Item is one cart line in a checkout message.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Intent selects a quick pre-filled message without cart contents.
type Intent string

const (
	IntentOrder   Intent = "order"
	IntentConsult Intent = "consult"
)

// ParseIntent returns the Intent for a query value, or false if unknown.
func ParseIntent(s string) (Intent, bool) {
	switch Intent(s) {
	case IntentOrder:
		return IntentOrder, true
	case IntentConsult:
		return IntentConsult, true
	}
	return "", false
}

var headers = map[catalog.Locale]string{
	catalog.LocaleRU: "Здравствуйте! Хочу оформить заказ в glamora_kz (Алматы).",
	catalog.LocaleKK: "Сәлеметсіз бе! glamora_kz (Алматы) дүкенінен тапсырыс бергім келеді.",
}

var itemsLabel = map[catalog.Locale]string{
	catalog.LocaleRU: "Товары:",
	catalog.LocaleKK: "Тауарлар:",
}

var qtyUnit = map[catalog.Locale]string{
	catalog.LocaleRU: "шт.",
	catalog.LocaleKK: "дана",
}

var formLabels = map[catalog.Locale][]string{
	catalog.LocaleRU: {
		"Имя: ______",
		"Адрес/доставка: ______",
		"Комментарий: ______",
	},
	catalog.LocaleKK: {
		"Аты-жөні: ______",
		"Мекенжай/жеткізу: ______",
		"Пікір: ______",
	},
}

var quickPrefills = map[catalog.Locale]map[Intent]string{
	catalog.LocaleRU: {
		IntentOrder:   "Здравствуйте! Хочу сделать заказ в glamora_kz. Подскажите, пожалуйста.",
		IntentConsult: "Здравствуйте! Нужна консультация по уходу в glamora_kz.",
	},
	catalog.LocaleKK: {
		IntentOrder:   "Сәлеметсіз бе! glamora_kz дүкенінен тапсырыс бергім келеді.",
		IntentConsult: "Сәлеметсіз бе! glamora_kz бойынша кеңес керек еді.",
	},
}

// Composer builds wa.me links for the shop owner's normalized phone number.
type Composer struct {
	phone string
}

// NewComposer creates a Composer. phone must already be normalized digits.
func NewComposer(phone string) *Composer {
	return &Composer{phone: phone}
}

// CheckoutLink builds a wa.me link whose pre-filled message lists the cart
// items and a short contact form for the buyer to fill in.
func (c *Composer) CheckoutLink(loc catalog.Locale, items []Item) string {
	lines := []string{headers[loc], itemsLabel[loc]}
	for i, item := range items {
		lines = append(lines, fmt.Sprintf("%d) %s — %d %s", i+1, item.Name, item.Qty, qtyUnit[loc]))
	}
	lines = append(lines, formLabels[loc]...)
	return c.link(strings.Join(lines, "\n"))
}

// QuickLink builds a wa.me link for a quick intent (order or consult).
func (c *Composer) QuickLink(loc catalog.Locale, intent Intent) string {
	return c.link(quickPrefills[loc][intent])
}

func (c *Composer) link(message string) string {
	return "https://wa.me/" + c.phone + "?text=" + url.QueryEscape(message)
}
