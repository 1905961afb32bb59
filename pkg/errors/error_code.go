package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Configuration errors (100-199)
	ErrCodeMissingAPIKey        ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeConfigFileFailed     ErrorCode = 102
	ErrCodeVersionMismatch      ErrorCode = 103
	ErrCodeDirectoryLoadFailed  ErrorCode = 104

	// Validation errors (200-299)
	ErrCodeInvalidParameter ErrorCode = 200
	ErrCodeInvalidDateRange ErrorCode = 201
	ErrCodeUnknownCommand   ErrorCode = 202
	ErrCodeUnknownSource    ErrorCode = 203
	ErrCodeMissingParameter ErrorCode = 204
	ErrCodeInvalidAssetKind ErrorCode = 205

	// Symbol errors (300-399)
	ErrCodeSymbolNotResolved ErrorCode = 300
	ErrCodeSymbolNotFound    ErrorCode = 301
	ErrCodeNoSourceLoaded    ErrorCode = 302

	// Market data errors (400-499)
	ErrCodeMarketDataFetchFailed ErrorCode = 400
	ErrCodeMarketDataParseFailed ErrorCode = 401
	ErrCodeProviderError         ErrorCode = 402
	ErrCodeQuoteTableFailed      ErrorCode = 403

	// Chart errors (500-599)
	ErrCodeEmptySeries   ErrorCode = 500
	ErrCodeMissingColumn ErrorCode = 501
	ErrCodeRenderFailed  ErrorCode = 502
)

// IsConfiguration reports whether the code belongs to the configuration range.
// Configuration errors are fatal for the operation that needed the configuration.
func (c ErrorCode) IsConfiguration() bool {
	return c >= 100 && c < 200
}

// IsValidation reports whether the code belongs to the validation range.
func (c ErrorCode) IsValidation() bool {
	return c >= 200 && c < 300
}
