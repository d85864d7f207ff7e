package models

// Product represents a catalog product
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	ImageURL    string   `json:"image_url"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
	CreatedAt   string   `json:"created_at"`
}

// ProductRequest represents the payload to create a product
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Category    string   `json:"category" binding:"required"`
	Sizes       []string `json:"sizes" binding:"required,min=1"`
	Colors      []string `json:"colors" binding:"required,min=1"`
	ImageURL    string   `json:"image_url"`
	Stock       int      `json:"stock" binding:"min=0"`
	Featured    bool     `json:"featured"`
}

// ProductUpdateRequest carries partial product edits; nil fields are left untouched
type ProductUpdateRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// CategoriesResponse wraps the distinct category list
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
