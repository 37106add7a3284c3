package models

import (
	"strings"
	"time"
)

type Review struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"store_id"`
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Images       []string  `json:"images,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r Review) Clone() Review {
	out := r
	if r.Images != nil {
		out.Images = append([]string(nil), r.Images...)
	}
	return out
}

type NewReviewInput struct {
	StoreID      string   `json:"store_id" validate:"required"`
	CustomerID   string   `json:"customer_id" validate:"required"`
	CustomerName string   `json:"customer_name"`
	Rating       int      `json:"rating" validate:"required,min=1,max=5"`
	Comment      string   `json:"comment" validate:"max=2000"`
	Images       []string `json:"images,omitempty" validate:"omitempty,max=5,dive,required"`
}

func (r *NewReviewInput) Sanitize() {
	r.Comment = strings.TrimSpace(r.Comment)
	r.CustomerName = strings.TrimSpace(r.CustomerName)

	seen := make(map[string]struct{}, len(r.Images))
	images := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		img = strings.TrimSpace(img)
		if _, ok := seen[img]; ok {
			continue
		}
		seen[img] = struct{}{}
		images = append(images, img)
	}
	if len(images) == 0 {
		images = nil
	}
	r.Images = images
}
