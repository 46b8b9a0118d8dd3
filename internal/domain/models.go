package domain

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Product struct {
	ProductID   int     `db:"product_id" json:"product_id"`
	StoreID     int     `db:"store_id" json:"store_id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	CategoryID  int     `db:"category_id" json:"category_id"`
	Status      string  `db:"status" json:"status"` // active | inactive
}

type Store struct {
	StoreID     int    `db:"store_id" json:"store_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	OwnerName   string `db:"owner_name" json:"owner_name"`
	UserID      int    `db:"user_id" json:"user_id"`
	PlanID      int    `db:"plan_id" json:"plan_id"` // 0 = no active plan
}

type Location struct {
	StoreID   int     `db:"store_id" json:"store_id"`
	Latitude  float64 `db:"latitude" json:"latitude"`
	Longitude float64 `db:"longitude" json:"longitude"`
	Address   string  `db:"address" json:"address"`
}

type Category struct {
	CategoryID  int    `db:"category_id" json:"category_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}

type Review struct {
	ReviewID  int    `db:"review_id" json:"review_id"`
	UserID    int    `db:"user_id" json:"user_id"`
	ProductID int    `db:"product_id" json:"product_id"`
	Rating    string `db:"rating" json:"rating"` // "1".."5" or a label (Excellent..Terrible)
	Comment   string `db:"comment" json:"comment"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

type Plan struct {
	PlanID int     `db:"plan_id" json:"plan_id"`
	Period string  `db:"period" json:"period"` // monthly | quarterly | semestral | annual
	Cost   float64 `db:"cost" json:"cost"`
}
