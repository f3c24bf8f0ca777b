package dto

import "time"

// CreateDriverRequest entrada para crear un camionero.
type CreateDriverRequest struct {
	Name           string     `json:"nombre" validate:"required"`
	Surname        string     `json:"apellido" validate:"required"`
	NationalID     string     `json:"cedula" validate:"required"`
	License        string     `json:"licencia" validate:"required"`
	Phone          string     `json:"telefono" validate:"required"`
	Email          string     `json:"email" validate:"omitempty,email"`
	BirthDate      time.Time  `json:"fechaNacimiento" validate:"required"`
	HireDate       *time.Time `json:"fechaIngreso"`
	LicenseExpires *time.Time `json:"fechaVencimientoLicencia"`
	Notes          string     `json:"observaciones"`
}

// UpdateDriverRequest entrada para actualización parcial (nil = sin cambio).
type UpdateDriverRequest struct {
	Name           *string    `json:"nombre"`
	Surname        *string    `json:"apellido"`
	License        *string    `json:"licencia"`
	Phone          *string    `json:"telefono"`
	Email          *string    `json:"email"`
	LicenseExpires *time.Time `json:"fechaVencimientoLicencia"`
	Status         *string    `json:"estado"`
	DrivenHours    *int       `json:"horasConducidas"`
	Resting        *bool      `json:"enDescanso"`
	Notes          *string    `json:"observaciones"`
}

// DriverResponse salida de un camionero.
type DriverResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"nombre"`
	Surname        string     `json:"apellido"`
	NationalID     string     `json:"cedula"`
	License        string     `json:"licencia"`
	Phone          string     `json:"telefono"`
	Email          string     `json:"email,omitempty"`
	BirthDate      time.Time  `json:"fechaNacimiento"`
	HireDate       time.Time  `json:"fechaIngreso"`
	LicenseExpires *time.Time `json:"fechaVencimientoLicencia,omitempty"`
	Status         string     `json:"estado"`
	DrivenHours    int        `json:"horasConducidas"`
	Resting        bool       `json:"enDescanso"`
	Available      bool       `json:"disponible"`
	Notes          string     `json:"observaciones,omitempty"`
	CreatedAt      time.Time  `json:"fechaCreacion"`
	UpdatedAt      time.Time  `json:"fechaActualizacion"`
}

// DriverListResponse listado paginado de camioneros.
type DriverListResponse struct {
	Drivers []DriverResponse `json:"camioneros"`
	Page    PageResponse     `json:"page"`
}
