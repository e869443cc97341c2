package domain

import "errors"

var (
	MessageSuccessCreateProveedor = "supplier registered successfully"
	MessageSuccessGetProveedores  = "suppliers retrieved successfully"
	MessageSuccessGetProveedor    = "supplier retrieved successfully"
	MessageSuccessUpdateProveedor = "supplier updated successfully"
	MessageSuccessDeleteProveedor = "supplier deleted successfully"
	MessageSuccessGetCamiones     = "trucks retrieved successfully"

	MessageFailedCreateProveedor = "failed to register supplier"
	MessageFailedGetProveedores  = "failed to retrieve suppliers"
	MessageFailedGetProveedor    = "failed to retrieve supplier"
	MessageFailedUpdateProveedor = "failed to update supplier"
	MessageFailedDeleteProveedor = "failed to delete supplier"
	MessageFailedGetCamiones     = "failed to retrieve trucks"

	ErrProveedorNotFound      = errors.New("supplier not found")
	ErrProveedorAlreadyExists = errors.New("a supplier with that economic number already exists")
	ErrProveedorInUse         = errors.New("supplier has registered products")
	ErrCamposRequeridos       = errors.New("required fields are missing")
)

type (
	CreateProveedorRequest struct {
		Nombre          string `json:"nombre" validate:"required,max=100"`
		SegundoNombre   string `json:"segundo_nombre" validate:"required,max=100"`
		Apellido        string `json:"apellido" validate:"required,max=100"`
		ApellidoMaterno string `json:"apellido_materno" validate:"omitempty,max=100"`
		NumeroEconomico string `json:"numero_economico" validate:"required,max=50"`
	}

	UpdateProveedorRequest struct {
		Nombre          string `json:"nombre" validate:"required,max=100"`
		SegundoNombre   string `json:"segundo_nombre" validate:"omitempty,max=100"`
		Apellido        string `json:"apellido" validate:"required,max=100"`
		ApellidoMaterno string `json:"apellido_materno" validate:"omitempty,max=100"`
		NumeroEconomico string `json:"numero_economico" validate:"required,max=50"`
	}

	ProveedorResponse struct {
		NumeroEconomico  string `json:"numero_economico"`
		Nombre           string `json:"nombre"`
		SegundoNombre    string `json:"segundo_nombre"`
		Apellido         string `json:"apellido"`
		ApellidoMaterno  string `json:"apellido_materno"`
		NombreCompleto   string `json:"nombre_completo"`
		ApellidoCompleto string `json:"apellido_completo"`
	}

	CamionResponse struct {
		NumeroEconomico uint   `json:"numero_economico"`
		Placas          string `json:"placas"`
		Tipo            string `json:"tipo"`
		Proveedor       string `json:"proveedor"`
	}
)
