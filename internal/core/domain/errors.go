package domain

import "go.trai.ch/zerr"

var (
	// ErrNoStoreConfigured is returned when an export is requested but the
	// configuration has no store section.
	ErrNoStoreConfigured = zerr.New("no store configured")

	// ErrTableExists is returned by an export in "fail" mode when the target
	// table already exists.
	ErrTableExists = zerr.New("table already exists")

	// ErrRowLengthMismatch is returned when a row does not match the dataset
	// column count.
	ErrRowLengthMismatch = zerr.New("row length does not match columns")

	// ErrIndexColumnsOutOfRange is returned when the configured index column
	// count exceeds the number of result columns.
	ErrIndexColumnsOutOfRange = zerr.New("index column count exceeds result columns")

	// ErrEmptyDataset is returned when an operation needs at least one row,
	// such as inferring column types for an export.
	ErrEmptyDataset = zerr.New("dataset has no rows")
)
