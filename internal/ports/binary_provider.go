package ports

type BinaryProvider interface {
	IsDownloaded(version string) bool
	ExecutablePath(version string) (string, error)
}
