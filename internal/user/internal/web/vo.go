package web

type SignupReq struct {
	Email           string `json:"email" validate:"required,email,max=256"`
	Password        string `json:"password" validate:"min=8,maxbytes=72,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=0123456789,containsany=@$!%*?&"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	FullName        string `json:"fullName" validate:"min=2,max=100"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResp struct {
	Uid         int64  `json:"uid"`
	AccessToken string `json:"accessToken"`
}

type UpdateProfileReq struct {
	FullName  string `json:"fullName" validate:"min=2,max=100"`
	Email     string `json:"email" validate:"required,email,max=256"`
	Skills    string `json:"skills" validate:"max=1000"`
	Interests string `json:"interests" validate:"max=1000"`
}

type ChangePasswordReq struct {
	CurrentPassword    string `json:"currentPassword" validate:"required"`
	NewPassword        string `json:"newPassword" validate:"min=8,maxbytes=72,containsany=ABCDEFGHIJKLMNOPQRSTUVWXYZ,containsany=0123456789,containsany=@$!%*?&"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"eqfield=NewPassword"`
}

// 用指针是为了区分没传和传了 false
type NotificationSettingsReq struct {
	EmailNotifications *bool `json:"emailNotifications" validate:"required"`
	JobAlerts          *bool `json:"jobAlerts" validate:"required"`
	ApplicationUpdates *bool `json:"applicationUpdates" validate:"required"`
	Newsletter         *bool `json:"newsletter" validate:"required"`
	MarketingEmails    *bool `json:"marketingEmails" validate:"required"`
}

type PrivacySettingsReq struct {
	ProfileVisibility string `json:"profileVisibility" validate:"required,oneof=public private connections"`
	ShowEmail         *bool  `json:"showEmail" validate:"required"`
	ShowResume        *bool  `json:"showResume" validate:"required"`
	DataSharing       *bool  `json:"dataSharing" validate:"required"`
}

type DeleteAccountReq struct {
	Confirmation string `json:"confirmation" validate:"required,eq=DELETE"`
	Reason       string `json:"reason" validate:"max=1000"`
}

type Profile struct {
	Id            int64                `json:"id"`
	Email         string               `json:"email"`
	FullName      string               `json:"fullName"`
	Skills        string               `json:"skills"`
	Interests     string               `json:"interests"`
	Notifications NotificationSettings `json:"notifications"`
	Privacy       PrivacySettings      `json:"privacy"`
	Ctime         int64                `json:"ctime"`
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	JobAlerts          bool `json:"jobAlerts"`
	ApplicationUpdates bool `json:"applicationUpdates"`
	Newsletter         bool `json:"newsletter"`
	MarketingEmails    bool `json:"marketingEmails"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"`
	ShowEmail         bool   `json:"showEmail"`
	ShowResume        bool   `json:"showResume"`
	DataSharing       bool   `json:"dataSharing"`
}
