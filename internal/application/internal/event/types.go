package event

const AccountDeletedEventName = "account_deleted_events"

type AccountDeletedEvent struct {
	Uid     int64  `json:"uid"`
	Reason  string `json:"reason"`
	Deleted int64  `json:"deleted"`
}
