package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// BarTypeUnsupported represents an error when the requested bar type is
	// not one of second, minute, hour or day.
	BarTypeUnsupported ErrorCode = "bar_type_unsupported"
	// DataUnavailable represents a historical or live reader failure. The
	// cache treats it as an empty input rather than a caller-visible error.
	DataUnavailable ErrorCode = "data_unavailable"
	// AggregationInputInconsistent represents a tick or bar arriving before
	// the aggregator's configured window start.
	AggregationInputInconsistent ErrorCode = "aggregation_input_inconsistent"
	// CalendarOutOfRange represents a trading-day lookup outside the loaded
	// calendar snapshot.
	CalendarOutOfRange ErrorCode = "calendar_out_of_range"
	// InstrumentUnknown represents a reference data miss for an instrument.
	InstrumentUnknown ErrorCode = "instrument_unknown"

	// QuestDBQueryError represents an error when querying QuestDB.
	QuestDBQueryError ErrorCode = "questdb_query_error"
	// RedisReadError represents an error when reading from Redis.
	RedisReadError ErrorCode = "redis_read_error"
	// RedisWriteError represents an error when writing to Redis.
	RedisWriteError ErrorCode = "redis_write_error"
	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
)
