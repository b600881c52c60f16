package constants

// HTTP Header
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderAdminUsername = "X-Admin-Username"
)

// gin.Context 键
const (
	ContextKeyRequestID = "request_id"
	ContextKeyActor     = "actor"
	ContextKeyActorSet  = "actor_explicit" // 请求头中显式携带了操作人
)
