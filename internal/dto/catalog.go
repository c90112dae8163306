package dto

// ServiceForm is the admin "nuevo servicio" form body. Numeric fields stay
// strings here; coercion happens in the service so a bad value comes back
// as a validation error the form can re-display.
type ServiceForm struct {
	Nombre      string `form:"nombre"`
	Descripcion string `form:"descripcion"`
	Precio      string `form:"precio"`
	Stock       string `form:"stock"`
	Promocion   string `form:"promocion"` // checkbox: non-empty when ticked
	Icono       string `form:"icono"`
}

// ServiceExport is one element of GET /api/servicios. Field names are kept
// in Spanish for compatibility with existing consumers.
type ServiceExport struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Stock       int     `json:"stock"`
	Promotion   bool    `json:"promocion"`
	Icon        string  `json:"icono"`
}
