package models

// Condominium represents a condominium row.
type Condominium struct {
	CondominiumID string `db:"condominium_id"`
	Name          string `db:"name"`
	Address       string `db:"address"`
	AdminID       string `db:"admin_id"`
	IsActive      bool   `db:"is_active"`
	AuditFields
}

// CommonArea represents a bookable common area row.
type CommonArea struct {
	CommonAreaID  string `db:"common_area_id"`
	CondominiumID string `db:"condominium_id"`
	Name          string `db:"name"`
	Description   string `db:"description"`
	State         string `db:"state"`
	AuditFields
}
