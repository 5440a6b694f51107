package store

import "github.com/optombazar7-cpu/SportZone/models"

// Every read leaves the store as a value copy: slices and pointer fields
// are duplicated so callers can never mutate stored state.

func copyProduct(p models.Product) models.Product {
	p.OriginalPrice = copyIntPtr(p.OriginalPrice)
	p.Subcategory = copyStrPtr(p.Subcategory)
	p.VideoURL = copyStrPtr(p.VideoURL)
	if p.Images != nil {
		p.Images = append([]string(nil), p.Images...)
	}
	if p.Sizes != nil {
		p.Sizes = append([]string(nil), p.Sizes...)
	}
	return p
}

func copyProducts(in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		out[i] = copyProduct(p)
	}
	return out
}

func copyCartItem(item models.CartItem) models.CartItem {
	item.Size = copyStrPtr(item.Size)
	return item
}

func copyOrder(o models.Order) models.Order {
	o.CustomerEmail = copyStrPtr(o.CustomerEmail)
	return o
}

func copyOrderItem(item models.OrderItem) models.OrderItem {
	item.Size = copyStrPtr(item.Size)
	return item
}

func copyUser(u models.User) models.User {
	u.Phone = copyStrPtr(u.Phone)
	return u
}

func copyStrPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
