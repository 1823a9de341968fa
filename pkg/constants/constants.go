package constants

const (
	CHANNEL_SIZE    = 100              // websocket outbound channel size
	FILE_MAX_SIZE   = 10 * 1024 * 1024 // attachment size ceiling in bytes (inclusive)
	AVATAR_MAX_SIZE = 2 * 1024 * 1024  // chat avatar size ceiling in bytes
	REDIS_TIMEOUT   = 1                // cache TTL (minutes)
)
