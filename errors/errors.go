package errors

import (
	"github.com/mdblp/i18n-rekey/messages"
	"github.com/napalu/goopt/v2/i18n"
)

var (
	// ErrFileNotFound is returned when the --file target does not exist
	ErrFileNotFound = i18n.NewError(messages.Keys.AppError.FileNotFound)

	// ErrDirectoryNotFound is returned when the target directory does not exist
	ErrDirectoryNotFound = i18n.NewError(messages.Keys.AppError.DirectoryNotFound)

	// ErrFailedToReadFile is returned when a file cannot be read
	ErrFailedToReadFile = i18n.NewError(messages.Keys.AppError.FailedToReadFile)

	// ErrFailedToWriteFile is returned when a rewritten file cannot be saved
	ErrFailedToWriteFile = i18n.NewError(messages.Keys.AppError.FailedToWriteFile)

	// ErrFailedToBackupFile is returned when the backup copy cannot be written
	ErrFailedToBackupFile = i18n.NewError(messages.Keys.AppError.FailedToBackupFile)

	// ErrFailedToWalk is returned when directory traversal fails
	ErrFailedToWalk = i18n.NewError(messages.Keys.AppError.FailedToWalk)

	// ErrInvalidJson is returned when a resource file is not valid JSON
	ErrInvalidJson = i18n.NewError(messages.Keys.AppError.InvalidJson)

	// ErrInvalidEncoding is returned when a file is not valid UTF-8
	ErrInvalidEncoding = i18n.NewError(messages.Keys.AppError.InvalidEncoding)

	// ErrNotAnObject is returned when the top-level JSON value is not an object
	ErrNotAnObject = i18n.NewError(messages.Keys.AppError.NotAnObject)

	// ErrTrailingData is returned when data follows the top-level JSON object
	ErrTrailingData = i18n.NewError(messages.Keys.AppError.TrailingData)

	// ErrInvalidMappingValue is returned when a mapping entry is not a string
	ErrInvalidMappingValue = i18n.NewError(messages.Keys.AppError.InvalidMappingValue)

	// ErrFailedToLoadMapping is returned when the mapping table cannot be loaded
	ErrFailedToLoadMapping = i18n.NewError(messages.Keys.AppError.FailedToLoadMapping)

	// ErrInvalidCollisionMode is returned for an unknown --collision value
	ErrInvalidCollisionMode = i18n.NewError(messages.Keys.AppError.InvalidCollisionMode)

	// ErrKeyCollision is returned when renamed keys collide in error mode
	ErrKeyCollision = i18n.NewError(messages.Keys.AppError.KeyCollision)

	// ErrInvalidPattern is returned when the filename pattern does not compile
	ErrInvalidPattern = i18n.NewError(messages.Keys.AppError.InvalidPattern)

	// ErrInvalidFunctionName is returned for an empty translation function name
	ErrInvalidFunctionName = i18n.NewError(messages.Keys.AppError.InvalidFunctionName)
)
