package tenant

import "gorm.io/gorm"

// Scope restricts a users query to one organisation. Tenancy is a mapping
// row, not a column: users belong to an organisation via
// organisation_user_maps.
func Scope(organisationID int64) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN organisation_user_maps ON organisation_user_maps.user_id = users.id").
			Where("organisation_user_maps.organisation_setting_id = ?", organisationID)
	}
}
