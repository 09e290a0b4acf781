package dto

// ─── Auth ────────────────────────────────────────────────────────────────────

type LoginRequest struct {
	Usuario    string `json:"usuario"    validate:"required"`
	Contrasena string `json:"contrasena" validate:"required"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Empleado EmpleadoResponse `json:"empleado"`
}

// ─── CRUD ────────────────────────────────────────────────────────────────────

type CrearEmpleadoRequest struct {
	ID             uint   `json:"id_empleado"     validate:"required"`
	NombreCompleto string `json:"nombre_completo" validate:"required"`
	Usuario        string `json:"usuario"         validate:"required"`
	Contrasena     string `json:"contrasena"      validate:"required,min=4"`
	Telefono       string `json:"telefono"`
	Cargo          string `json:"cargo"           validate:"required"`
}

type ActualizarEmpleadoRequest struct {
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
	Telefono       string `json:"telefono"`
	Cargo          string `json:"cargo"`
}

type EmpleadoResponse struct {
	ID             uint   `json:"id_empleado"`
	NombreCompleto string `json:"nombre_completo"`
	Usuario        string `json:"usuario"`
	Telefono       string `json:"telefono"`
	Cargo          string `json:"cargo"`
	Activo         bool   `json:"activo"`
	FechaCreacion  string `json:"fecha_creacion"`
}
