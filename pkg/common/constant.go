package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyFMDBType string = "FM_DB_TYPE"
	EnvKeyFMDbPath string = "FM_DB_PATH"

	EnvKeyFMHttpHostPort string = "FM_HTTP_HOST_PORT"
	EnvKeyFMGrpcHostPort string = "FM_GRPC_HOST_PORT"

	EnvKeyFMDefaultRate  string = "FM_DEFAULT_RATE"
	EnvKeyFMDefaultBurst string = "FM_DEFAULT_BURST"

	EnvKeyFMTickInterval  string = "FM_TICK_INTERVAL"
	EnvKeyFMCriticalCount string = "FM_CRITICAL_COUNT"

	EnvKeyFMAIBaseURL string = "FM_AI_BASE_URL"

	EnvKeyFMRedisAddr   string = "FM_REDIS_ADDR"
	EnvKeyFMRedisPrefix string = "FM_REDIS_PREFIX"

	LoggerNameFleetCore     string = "fleet_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameGrpcServer    string = "grpc_server"
	LoggerNameAIClient      string = "ai_client"
	LoggerNamePublisher     string = "publisher"

	LoggerFieldFleetCategory     string = "category"
	LoggerCategoryFleetSnapshot  string = "snapshot"
	LoggerCategoryFleetAlert     string = "alert"
	LoggerCategoryFleetHistory   string = "history"
	LoggerCategoryFleetAnalysis  string = "analysis"
	LoggerCategoryFleetRotator   string = "rotator"
	LoggerCategoryFleetScheduler string = "scheduler"
)
