package constvars

const (
	URLParamDay     = "day"
	URLParamTeacher = "teacher"
)

const (
	URLQueryParamDay    = "day"
	URLQueryParamTime   = "time"
	URLQueryParamPolicy = "policy"
)

const (
	RequestTimeoutInSeconds = 10
	ReloadTimeoutInSeconds  = 30
)
