package consts

const (
	BlogPostKey    = "blog:post:"
	BlogListKey    = "blog:list:page:"
	UsageDirtyKey  = "usage:dirty"
	UsageDailyKey  = "usage:daily:"
	UsageActiveKey = "usage:active:"
)

const (
	UsageRollupLock = "lock:usage:rollup"
	AutoBlogLock    = "lock:blog:autogen"
	UsageResetLock  = "lock:usage:reset"
)
