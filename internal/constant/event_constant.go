package constant

const (
	EventUserRegistered         = "USER_REGISTERED"
	EventChatTurnCompleted      = "CHAT_TURN_COMPLETED"
	EventChatTurnFailed         = "CHAT_TURN_FAILED"
	EventSessionCategoryChanged = "SESSION_CATEGORY_CHANGED"
	EventCategoryChanged        = "CATEGORY_CHANGED"

	EventTopic = "mindwell.events"
)
