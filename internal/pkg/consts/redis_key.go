package consts

const (
	// TokenDenyKey prefix for revoked JWT signatures (logout)
	TokenDenyKey = "auth:deny:"

	// TagSnapshotKey list holding the distinct tag union, refreshed by TagCacheJob
	TagSnapshotKey = "tags:snapshot"
)
