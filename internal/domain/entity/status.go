package entity

// Estados compartidos por bodegas, categorías y productos.
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)
