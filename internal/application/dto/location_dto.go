package dto

// LocationRequest body para registrar una ubicación en el catálogo.
type LocationRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // internal, vendor, customer, scrap, adjustment
}

// LocationResponse entrada del catálogo de ubicaciones.
type LocationResponse struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}
