package domain

// Condominium is the top-level tenant entity. It exclusively owns its
// departments, common areas and monthly expenses; its admin is the only
// actor (besides superadmins) allowed to decide on requests belonging to it.
type Condominium struct {
	CondominiumID string `json:"condominiumID"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	AdminID       string `json:"adminID"` // FK -> users.user_id, role ADMIN
	IsActive      bool   `json:"isActive"`
	AuditFields
}

// CommonAreaState tracks whether an area is currently open for reservation.
type CommonAreaState string

const (
	AreaFree     CommonAreaState = "FREE"
	AreaOccupied CommonAreaState = "OCCUPIED"
)

// CommonArea is a bookable space inside a condominium.
type CommonArea struct {
	CommonAreaID  string          `json:"commonAreaID"`
	CondominiumID string          `json:"condominiumID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	State         CommonAreaState `json:"state"`
	AuditFields
}
