package social

import "time"

// UserSocialNetwork links a local user to one external identity. The unique
// index on provider+social_uid makes repeated logins idempotent.
type UserSocialNetwork struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    int64  `gorm:"column:user_id;index"`
	Name      string `gorm:"column:name;type:varchar(191)"`
	Provider  string `gorm:"column:provider;type:varchar(50);uniqueIndex:uq_social_provider_uid"`
	SocialUID string `gorm:"column:social_uid;type:varchar(191);uniqueIndex:uq_social_provider_uid"`
	Token     string `gorm:"column:token;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserSocialNetwork) TableName() string { return "user_social_networks" }
