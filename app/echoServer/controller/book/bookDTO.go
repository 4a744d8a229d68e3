package book

import "bookstore/model"

type PriceReq struct {
	Purchase    float64 `json:"purchase" validate:"gte=0"`
	Rent2Weeks  float64 `json:"rent2Weeks" validate:"gte=0"`
	Rent1Month  float64 `json:"rent1Month" validate:"gte=0"`
	Rent3Months float64 `json:"rent3Months" validate:"gte=0"`
}

type UpsertBookReq struct {
	Title         string   `json:"title" validate:"required"`
	Author        string   `json:"author" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Year          int      `json:"year" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	CoverImageURL string   `json:"coverImageUrl" validate:"required"`
	PDFPath       string   `json:"pdfPath" validate:"required"`
	Price         PriceReq `json:"price"`
	Status        string   `json:"status" validate:"omitempty,oneof=available unavailable"`
}

func (r UpsertBookReq) toModel() *model.Book {
	status := model.BookStatus(r.Status)
	if status == "" {
		status = model.BookAvailable
	}
	return &model.Book{
		Title:         r.Title,
		Author:        r.Author,
		Category:      r.Category,
		Year:          r.Year,
		Description:   r.Description,
		CoverImageURL: r.CoverImageURL,
		PDFPath:       r.PDFPath,
		Price: model.Price{
			Purchase:    r.Price.Purchase,
			Rent2Weeks:  r.Price.Rent2Weeks,
			Rent1Month:  r.Price.Rent1Month,
			Rent3Months: r.Price.Rent3Months,
		},
		Status: status,
	}
}
