package domain

import "errors"

var (
	ErrBinaryNotReady            = errors.New("runtime binary not downloaded")
	ErrScratchWrite              = errors.New("could not save snippet to scratch directory")
	ErrDependencyInstall         = errors.New("could not install dependencies")
	ErrBuildScript               = errors.New("build script failed")
	ErrSpawn                     = errors.New("could not start process")
	ErrPackageManagerUnavailable = errors.New("package manager unavailable")
	ErrOperationInProgress       = errors.New("another operation is in progress")
	ErrRunCancelled              = errors.New("run cancelled")
	ErrInvalidPhaseTransition    = errors.New("invalid phase transition")
	ErrSessionNotFound           = errors.New("scratch session not found")
	ErrRunNotFound               = errors.New("run record not found")
	ErrVersionNotFound           = errors.New("runtime version not found")
)
