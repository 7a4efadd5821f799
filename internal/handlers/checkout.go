// Copyright (c) 2026 glamora_kz <hello@glamora.kz>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"

	"glamora/internal/catalog"
	"glamora/internal/whatsapp"
)

// Checkout turns cart contents into pre-filled WhatsApp links. Product names
// are resolved server-side from ids so the message always matches the
// current catalog.
type Checkout struct {
	svc      *catalog.Service
	composer *whatsapp.Composer
}

func NewCheckout(svc *catalog.Service, composer *whatsapp.Composer) *Checkout {
	return &Checkout{svc: svc, composer: composer}
}

type checkoutItem struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

type checkoutRequest struct {
	Items []checkoutItem `json:"items"`
}

type checkoutResponse struct {
	URL string `json:"url"`
}

// Create handles POST /api/{locale}/checkout.
func (h *Checkout) Create(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	var req checkoutRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	items := make([]whatsapp.Item, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Qty <= 0 {
			respondError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		product, err := h.svc.ProductByID(r.Context(), it.ID)
		if err != nil {
			catalogError(w, err)
			return
		}
		if product == nil {
			respondError(w, http.StatusNotFound, "unknown product "+it.ID)
			return
		}
		items = append(items, whatsapp.Item{
			ID:   product.ID,
			Name: product.Name[loc],
			Qty:  it.Qty,
		})
	}

	respondJSON(w, http.StatusOK, checkoutResponse{URL: h.composer.CheckoutLink(loc, items)})
}

// QR handles GET /api/{locale}/checkout/qr?intent=order|consult and responds
// with a PNG QR code of the quick wa.me link, for print materials and the
// storefront contact block.
func (h *Checkout) QR(w http.ResponseWriter, r *http.Request) {
	loc, ok := localeParam(w, r)
	if !ok {
		return
	}

	intent, ok := whatsapp.ParseIntent(r.URL.Query().Get("intent"))
	if !ok {
		respondError(w, http.StatusBadRequest, "intent must be order or consult")
		return
	}

	png, err := qrcode.Encode(h.composer.QuickLink(loc, intent), qrcode.Medium, 256)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "qr encoding failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
