package event

const AccountDeletedEventName = "account_deleted_events"

// AccountDeletedEvent 账号删除之后，评价和投递记录由各自的模块清理
type AccountDeletedEvent struct {
	Uid    int64  `json:"uid"`
	Reason string `json:"reason"`
	// 毫秒
	Deleted int64 `json:"deleted"`
}
