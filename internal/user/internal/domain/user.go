package domain

type User struct {
	Id int64
	// 唯一
	Email string
	// bcrypt 之后的密码，不会返回给前端
	Password  string
	FullName  string
	Skills    string
	Interests string

	Notification NotificationSettings
	Privacy      PrivacySettings

	Ctime int64
	Utime int64
}

type NotificationSettings struct {
	EmailNotifications bool
	JobAlerts          bool
	ApplicationUpdates bool
	Newsletter         bool
	MarketingEmails    bool
}

type ProfileVisibility string

const (
	ProfileVisibilityPublic      ProfileVisibility = "public"
	ProfileVisibilityPrivate     ProfileVisibility = "private"
	ProfileVisibilityConnections ProfileVisibility = "connections"
)

type PrivacySettings struct {
	ProfileVisibility ProfileVisibility
	ShowEmail         bool
	ShowResume        bool
	DataSharing       bool
}

// DefaultNotificationSettings 新用户的通知设置
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailNotifications: true,
		JobAlerts:          true,
		ApplicationUpdates: true,
	}
}

func DefaultPrivacySettings() PrivacySettings {
	return PrivacySettings{
		ProfileVisibility: ProfileVisibilityPublic,
		ShowResume:        true,
	}
}
